package models

import "time"

type SubmitReportResponse struct {
	Success  bool   `json:"success"`
	ID       int64  `json:"id"`
	TicketID string `json:"ticketId"`
	ImageURL string `json:"imageUrl"`
}

type IssueResponse struct {
	ID           int64     `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalname,omitempty"`
	Description  string    `json:"description,omitempty"`
	Category     string    `json:"category,omitempty"`
	Lat          *float64  `json:"lat,omitempty"`
	Lon          *float64  `json:"lon,omitempty"`
	Status       string    `json:"status"`
	ImageURL     string    `json:"imageUrl"`
	CreatedAt    time.Time `json:"created_at"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ErrorResponse struct {
	Status int    `json:"status,omitempty"`
	Error  string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
