package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// StatusPending is the status assigned to tasks created without one
const StatusPending = "Pending"

// Task represents a to-do item owned by the user whose email it carries.
// Ownership is the email string alone; there is no foreign key to users.
type Task struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	TaskText string             `bson:"taskText" json:"taskText"`
	Status   string             `bson:"status" json:"status"`
}

// TaskPatch carries the optional fields of a task update; nil means unchanged
type TaskPatch struct {
	TaskText *string `json:"taskText,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// IsEmpty reports whether the patch changes nothing
func (p TaskPatch) IsEmpty() bool {
	return p.TaskText == nil && p.Status == nil
}
