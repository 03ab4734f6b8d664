package account

import "time"

type CreateAccountSchema struct {
	Name           string `json:"name" validate:"required"`
	OpeningBalance int64  `json:"opening_balance" validate:"gte=0"`
}

type CreateAccountResponseSchema struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	OpeningBalance int64  `json:"opening_balance"`
}

type BalanceShowSchema struct {
	AccountID int64 `json:"account_id"`
	Balance   int64 `json:"balance"`
}

type MoveMoneySchema struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type ActivityShowSchema struct {
	ID              int64     `json:"id"`
	SourceAccountID *int64    `json:"source_account_id"`
	TargetAccountID *int64    `json:"target_account_id"`
	Timestamp       time.Time `json:"timestamp"`
	Amount          int64     `json:"amount"`
	Type            string    `json:"type"`
}
