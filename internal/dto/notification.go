package dto

import (
	"time"

	"github.com/MohamedHany17m8/x-from-scratch/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetNotificationDto struct {
	ID        primitive.ObjectID `json:"id"`
	From      AuthorDto          `json:"from"`
	Type      string             `json:"type"`
	Read      bool               `json:"read"`
	CreatedAt time.Time          `json:"created_at"`
}

func GetNotificationDtoFromNotification(n model.Notification, authors map[primitive.ObjectID]AuthorDto) *GetNotificationDto {
	return &GetNotificationDto{
		ID:        n.ID,
		From:      resolveAuthor(n.From, authors),
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
