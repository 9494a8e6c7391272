package domain

import "time"

type SampleGenerationStatus string

const (
	SampleGenerationCompleted    SampleGenerationStatus = "completed"
	SampleGenerationPendingPrice SampleGenerationStatus = "pending_price"
	SampleGenerationNoVariants   SampleGenerationStatus = "no_variants"
	SampleGenerationFailed       SampleGenerationStatus = "failed"
)

// SampleGeneration registra o resultado de cada geração de produto de exemplo
type SampleGeneration struct {
	ID        string                 `json:"id"`
	Shop      string                 `json:"shop"`
	Title     string                 `json:"title"`
	ProductID *string                `json:"product_id,omitempty"`
	VariantID *string                `json:"variant_id,omitempty"`
	Price     string                 `json:"price"`
	Status    SampleGenerationStatus `json:"status"`
	Attempts  int                    `json:"attempts"`
	LastError *string                `json:"last_error,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
