package models

import "time"

// Owner: backend (mission chat).

type MissionChatMessage struct {
	ID         string    `json:"id" contract:"id,required,bson=_id"`
	MissionID  string    `json:"missionId" contract:"mission_id,required"`
	SenderID   string    `json:"senderId" contract:"sender_id,required"`
	SenderName string    `json:"senderName" contract:"sender_name,required"`
	SenderRole string    `json:"senderRole" contract:"sender_role,required"`
	Content    string    `json:"content" contract:"content,required"`
	Timestamp  time.Time `json:"timestamp" contract:"timestamp,required"`
	CreatedAt  time.Time `json:"createdAt" contract:"created_at,required"`
}

type TypingUser struct {
	UserID   string `json:"userId" contract:"user_id,required"`
	UserName string `json:"userName" contract:"user_name,required"`
}

type TypingStatus struct {
	MissionID   string       `json:"missionId" contract:"mission_id,required"`
	TypingUsers []TypingUser `json:"typingUsers" contract:"typing_users,default=[]"`
}

type SendMissionChatMessageRequest struct {
	Content string `json:"content" contract:"content,required"`
}

type UpdateTypingStatusRequest struct {
	IsTyping bool `json:"isTyping" contract:"is_typing,required"`
}

// MissionChatResponse is one page of chat history.
type MissionChatResponse struct {
	Messages   []MissionChatMessage `json:"messages" contract:"messages,required"`
	TotalCount int                  `json:"totalCount" contract:"total_count,required"`
	HasMore    bool                 `json:"hasMore" contract:"has_more,required"`
}
