package dto

import "time"

type SettlementResponseDTO struct {
	ID               int64     `json:"id" example:"17"`
	AccountID        int64     `json:"account_id,omitempty" example:"123456789"`
	ReceiptID        string    `json:"receipt_id" example:"ch_3PLZ5x2eZvKYlo2C1hM7Hc9c"`
	TelegramChargeID string    `json:"telegram_charge_id" example:"6032155_2342"`
	Amount           int64     `json:"amount" example:"750"`
	Fee              int64     `json:"fee" example:"35"`
	SettledAt        time.Time `json:"settled_at" example:"2024-05-01T20:30:00+02:00"`
}

type ForwardRequestDTO struct {
	Limit int `json:"limit" example:"50"`
}

type ForwardResponseDTO struct {
	Queued int `json:"queued" example:"3"`
}

type HealthResponseDTO struct {
	Status string `json:"status" example:"ok"`
}
