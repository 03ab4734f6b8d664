package transfer

type SendMoneySchema struct {
	SourceAccountID int64 `json:"source_account_id" validate:"required,gt=0"`
	TargetAccountID int64 `json:"target_account_id" validate:"required,gt=0"`
	Amount          int64 `json:"amount" validate:"required,gt=0"`
}

type SendMoneyResponseSchema struct {
	SourceAccountID int64  `json:"source_account_id"`
	TargetAccountID int64  `json:"target_account_id"`
	Amount          int64  `json:"amount"`
	Status          string `json:"status"`
}
