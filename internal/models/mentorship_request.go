package models

import "time"

// MentorshipRequest - заявка студента на менторство.
// Статус меняется ровно один раз: pending -> accepted | rejected.
type MentorshipRequest struct {
	BaseModel
	StudentID string        `gorm:"type:uuid;not null;index" json:"student_id"`
	MentorID  string        `gorm:"type:uuid;not null;index" json:"mentor_id"`
	Status    RequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	Student *User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Mentor  *User `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`

	// Встроенный тред сообщений. Есть в модели данных,
	// но ни один workflow его пока не читает и не пишет.
	Messages []RequestMessage `gorm:"foreignKey:RequestID" json:"messages,omitempty"`
}

type RequestMessage struct {
	BaseModel
	RequestID string    `gorm:"type:uuid;not null;index" json:"request_id"`
	SenderID  string    `gorm:"type:uuid;not null" json:"sender_id"`
	Text      string    `gorm:"not null" json:"text"`
	SentAt    time.Time `gorm:"default:now()" json:"sent_at"`
}
