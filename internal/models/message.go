package models

type Message struct {
	BaseModel
	BookingID     string      `gorm:"type:uuid;not null;index" json:"booking_id"`
	SenderID      string      `gorm:"type:uuid;not null" json:"sender_id"`
	ReceiverID    string      `gorm:"type:uuid;not null" json:"receiver_id"`
	Content       string      `gorm:"not null" json:"content"`
	MessageType   MessageType `gorm:"type:varchar(20);default:'text'" json:"message_type"`
	AttachmentURL string      `json:"attachment_url,omitempty"`
	IsRead        bool        `gorm:"default:false" json:"is_read"`

	Booking *Booking `gorm:"foreignKey:BookingID" json:"-"`
}
