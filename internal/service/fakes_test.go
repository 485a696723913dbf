package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/MohamedHany17m8/x-from-scratch/internal/imagestore"
	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"github.com/MohamedHany17m8/x-from-scratch/internal/repository"
	"github.com/MohamedHany17m8/x-from-scratch/internal/repository/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// In-memory stand-ins for the mongo repositories and the image store. They
// mirror the real implementations' contracts: mongo.ErrNoDocuments on missing
// documents, newest-first ordering, set semantics for likes and follows.

type fakeUserRepo struct {
	users     map[primitive.ObjectID]*model.User
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user model.User) (*model.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	user.ID = primitive.NewObjectID()
	user.Followers = []primitive.ObjectID{}
	user.Following = []primitive.ObjectID{}
	user.LikedPosts = []primitive.ObjectID{}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	stored := user
	r.users[user.ID] = &stored
	return &user, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	users := []*model.User{}
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			copied := *user
			users = append(users, &copied)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) FindSuggested(_ context.Context, exclude []primitive.ObjectID, limit int64) ([]*model.User, error) {
	users := []*model.User{}
	for _, user := range r.users {
		if model.ContainsID(exclude, user.ID) {
			continue
		}
		copied := *user
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	if int64(len(users)) > limit {
		users = users[:limit]
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateByID(_ context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil
	}
	for field, value := range updates {
		switch field {
		case "username":
			user.Username = value.(string)
		case "email":
			user.Email = value.(string)
		case "fullName":
			user.FullName = value.(string)
		case "bio":
			user.Bio = value.(string)
		case "link":
			user.Link = value.(string)
		case "password":
			user.Password = value.(string)
		case "profileImg":
			user.ProfileImg = value.(*model.Image)
		case "coverImg":
			user.CoverImg = value.(*model.Image)
		default:
			return fmt.Errorf("unexpected update field %q", field)
		}
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) AddFollower(_ context.Context, userID, followerID primitive.ObjectID) error {
	return r.addToSet(userID, followerID, func(u *model.User) *[]primitive.ObjectID { return &u.Followers })
}

func (r *fakeUserRepo) RemoveFollower(_ context.Context, userID, followerID primitive.ObjectID) error {
	return r.pull(userID, followerID, func(u *model.User) *[]primitive.ObjectID { return &u.Followers })
}

func (r *fakeUserRepo) AddFollowing(_ context.Context, userID, targetID primitive.ObjectID) error {
	return r.addToSet(userID, targetID, func(u *model.User) *[]primitive.ObjectID { return &u.Following })
}

func (r *fakeUserRepo) RemoveFollowing(_ context.Context, userID, targetID primitive.ObjectID) error {
	return r.pull(userID, targetID, func(u *model.User) *[]primitive.ObjectID { return &u.Following })
}

func (r *fakeUserRepo) AddLikedPost(_ context.Context, userID, postID primitive.ObjectID) error {
	return r.addToSet(userID, postID, func(u *model.User) *[]primitive.ObjectID { return &u.LikedPosts })
}

func (r *fakeUserRepo) RemoveLikedPost(_ context.Context, userID, postID primitive.ObjectID) error {
	return r.pull(userID, postID, func(u *model.User) *[]primitive.ObjectID { return &u.LikedPosts })
}

func (r *fakeUserRepo) addToSet(id, value primitive.ObjectID, field func(*model.User) *[]primitive.ObjectID) error {
	user, ok := r.users[id]
	if !ok {
		return nil
	}
	set := field(user)
	if !model.ContainsID(*set, value) {
		*set = append(*set, value)
	}
	return nil
}

func (r *fakeUserRepo) pull(id, value primitive.ObjectID, field func(*model.User) *[]primitive.ObjectID) error {
	user, ok := r.users[id]
	if !ok {
		return nil
	}
	set := field(user)
	filtered := (*set)[:0]
	for _, v := range *set {
		if v != value {
			filtered = append(filtered, v)
		}
	}
	*set = filtered
	return nil
}

type fakePostRepo struct {
	posts map[primitive.ObjectID]*model.Post
	seq   int
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[primitive.ObjectID]*model.Post)}
}

func (r *fakePostRepo) Create(_ context.Context, post model.Post) (*model.Post, error) {
	post.ID = primitive.NewObjectID()
	post.Likes = []primitive.ObjectID{}
	post.Comments = []model.Comment{}
	r.seq++
	post.CreatedAt = time.Unix(int64(r.seq), 0)
	stored := post
	r.posts[post.ID] = &stored
	return &post, nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *post
	return &copied, nil
}

func (r *fakePostRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	return r.find(func(*model.Post) bool { return true }), nil
}

func (r *fakePostRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]*model.Post, error) {
	return r.find(func(p *model.Post) bool { return p.User == userID }), nil
}

func (r *fakePostRepo) FindByUsers(_ context.Context, userIDs []primitive.ObjectID) ([]*model.Post, error) {
	return r.find(func(p *model.Post) bool { return model.ContainsID(userIDs, p.User) }), nil
}

func (r *fakePostRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*model.Post, error) {
	return r.find(func(p *model.Post) bool { return model.ContainsID(ids, p.ID) }), nil
}

func (r *fakePostRepo) AddLike(_ context.Context, postID, userID primitive.ObjectID) error {
	post, ok := r.posts[postID]
	if !ok {
		return nil
	}
	if !model.ContainsID(post.Likes, userID) {
		post.Likes = append(post.Likes, userID)
	}
	return nil
}

func (r *fakePostRepo) RemoveLike(_ context.Context, postID, userID primitive.ObjectID) error {
	post, ok := r.posts[postID]
	if !ok {
		return nil
	}
	filtered := post.Likes[:0]
	for _, v := range post.Likes {
		if v != userID {
			filtered = append(filtered, v)
		}
	}
	post.Likes = filtered
	return nil
}

func (r *fakePostRepo) AddComment(_ context.Context, postID primitive.ObjectID, comment model.Comment) error {
	post, ok := r.posts[postID]
	if !ok {
		return nil
	}
	post.Comments = append(post.Comments, comment)
	return nil
}

func (r *fakePostRepo) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) find(match func(*model.Post) bool) []*model.Post {
	posts := []*model.Post{}
	for _, post := range r.posts {
		if match(post) {
			copied := *post
			posts = append(posts, &copied)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts
}

type fakeNotificationRepo struct {
	notifications []*model.Notification
	seq           int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification model.Notification) (*model.Notification, error) {
	notification.ID = primitive.NewObjectID()
	notification.Read = false
	r.seq++
	notification.CreatedAt = time.Unix(int64(r.seq), 0)
	stored := notification
	r.notifications = append(r.notifications, &stored)
	return &notification, nil
}

func (r *fakeNotificationRepo) FindByTo(_ context.Context, to primitive.ObjectID) ([]*model.Notification, error) {
	found := []*model.Notification{}
	for _, n := range r.notifications {
		if n.To == to {
			copied := *n
			found = append(found, &copied)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].CreatedAt.After(found[j].CreatedAt) })
	return found, nil
}

func (r *fakeNotificationRepo) MarkReadByTo(_ context.Context, to primitive.ObjectID) error {
	for _, n := range r.notifications {
		if n.To == to {
			n.Read = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) DeleteByTo(_ context.Context, to primitive.ObjectID) error {
	kept := r.notifications[:0]
	for _, n := range r.notifications {
		if n.To != to {
			kept = append(kept, n)
		}
	}
	r.notifications = kept
	return nil
}

func (r *fakeNotificationRepo) countByType(to primitive.ObjectID, kind string) int {
	count := 0
	for _, n := range r.notifications {
		if n.To == to && n.Type == kind {
			count++
		}
	}
	return count
}

var errImageStore = errors.New("image store unavailable")

type fakeImageStore struct {
	seq       int
	uploaded  []string
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeImageStore) Upload(_ context.Context, file string, folder string) (*model.Image, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.seq++
	publicID := fmt.Sprintf("%s/img%d", folder, f.seq)
	f.uploaded = append(f.uploaded, publicID)
	return &model.Image{
		URL:      "https://images.test/" + publicID,
		PublicID: publicID,
	}, nil
}

func (f *fakeImageStore) Delete(_ context.Context, img model.Image) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, img.PublicID)
	return nil
}

type testEnv struct {
	services *Service
	users    *fakeUserRepo
	posts    *fakePostRepo
	notifs   *fakeNotificationRepo
	images   *fakeImageStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Setenv("JWT_SECRET", "test-secret")

	users := newFakeUserRepo()
	posts := newFakePostRepo()
	notifs := newFakeNotificationRepo()
	images := &fakeImageStore{}

	repo := &repository.Repository{
		Mongo: &mongodb.MongoRepository{
			User:         users,
			Post:         posts,
			Notification: notifs,
		},
	}

	return &testEnv{
		services: New(zap.NewNop(), repo, images),
		users:    users,
		posts:    posts,
		notifs:   notifs,
		images:   images,
	}
}

func (e *testEnv) mustCreateUser(username, email string) *model.User {
	user, err := e.users.Create(context.Background(), model.User{
		Username: username,
		FullName: "Test User",
		Email:    email,
		Password: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
	})
	if err != nil {
		panic(err)
	}
	return user
}

var _ imagestore.Store = (*fakeImageStore)(nil)
