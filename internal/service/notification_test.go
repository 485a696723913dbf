package service

import (
	"context"
	"testing"

	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
)

func TestNotificationsListMarksRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustCreateUser("alice", "alice@example.com")
	bob := env.mustCreateUser("bob", "bob@example.com")

	if _, err := env.notifs.Create(ctx, model.Notification{From: bob.ID, To: alice.ID, Type: model.NotificationFollow}); err != nil {
		t.Fatalf("create notification: %v", err)
	}
	if _, err := env.notifs.Create(ctx, model.Notification{From: bob.ID, To: alice.ID, Type: model.NotificationLike}); err != nil {
		t.Fatalf("create notification: %v", err)
	}

	views, err := env.services.Notification.GetAll(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(views))
	}
	if views[0].Type != model.NotificationLike || views[1].Type != model.NotificationFollow {
		t.Fatalf("expected newest-first order, got %+v", views)
	}
	if views[0].From.Username != "bob" {
		t.Fatalf("source account not resolved: %+v", views[0].From)
	}
	for _, v := range views {
		if v.Read {
			t.Fatalf("first listing must show pre-mark read state: %+v", v)
		}
	}

	// The mark-read side effect is visible on the next listing.
	views, err = env.services.Notification.GetAll(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	for _, v := range views {
		if !v.Read {
			t.Fatalf("expected notifications marked read: %+v", v)
		}
	}
}

func TestNotificationsEmptyList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustCreateUser("alice", "alice@example.com")

	views, err := env.services.Notification.GetAll(ctx, alice.ID)
	if err != nil {
		t.Fatalf("empty notification list must not fail: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected empty list, got %+v", views)
	}
}

func TestNotificationsDeleteAll(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.mustCreateUser("alice", "alice@example.com")
	bob := env.mustCreateUser("bob", "bob@example.com")

	if _, err := env.notifs.Create(ctx, model.Notification{From: bob.ID, To: alice.ID, Type: model.NotificationLike}); err != nil {
		t.Fatalf("create notification: %v", err)
	}
	if _, err := env.notifs.Create(ctx, model.Notification{From: alice.ID, To: bob.ID, Type: model.NotificationLike}); err != nil {
		t.Fatalf("create notification: %v", err)
	}

	if err := env.services.Notification.DeleteAll(ctx, alice.ID); err != nil {
		t.Fatalf("DeleteAll returned error: %v", err)
	}

	mine, _ := env.notifs.FindByTo(ctx, alice.ID)
	if len(mine) != 0 {
		t.Fatalf("alice's notifications not deleted: %+v", mine)
	}
	others, _ := env.notifs.FindByTo(ctx, bob.ID)
	if len(others) != 1 {
		t.Fatalf("bob's notifications must be untouched: %+v", others)
	}

	// Deleting again with nothing left still succeeds.
	if err := env.services.Notification.DeleteAll(ctx, alice.ID); err != nil {
		t.Fatalf("DeleteAll must be idempotent: %v", err)
	}
}
