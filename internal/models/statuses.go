package models

type UserRole string
type MentorStatus string
type RequestStatus string

const (
	UserRoleStudent UserRole = "student"
	UserRoleMentor  UserRole = "mentor"
	UserRoleAdmin   UserRole = "admin"

	MentorStatusPending  MentorStatus = "pending"
	MentorStatusApproved MentorStatus = "approved"
	MentorStatusRejected MentorStatus = "rejected"

	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)
