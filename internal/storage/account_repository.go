package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/pvieira/go-moneytransfer/internal/domain"
)

// AccountRepository loads and updates account aggregates. Loading folds all
// activity before the baseline date into the baseline balance and fills the
// window with everything at or after it; updating appends the aggregate's
// unsaved activities.
type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateAccount inserts a new account. A positive opening balance is
// recorded as an external deposit activity.
func (r *AccountRepository) CreateAccount(ctx context.Context, ownerName string, opening domain.Money) (domain.AccountID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int64
	err = tx.QueryRow(ctx, "INSERT INTO accounts (owner_name) VALUES ($1) RETURNING id", ownerName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create account: %w", err)
	}

	if opening.IsPositive() {
		_, err = tx.Exec(ctx, `
			INSERT INTO activities (owner_account_id, source_account_id, target_account_id, ts, amount)
			VALUES ($1, NULL, $1, $2, $3)`,
			id, time.Now(), opening.Amount())
		if err != nil {
			return 0, fmt.Errorf("failed to record opening balance: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return domain.AccountID(id), nil
}

// LoadAccount implements app.LoadAccountPort.
func (r *AccountRepository) LoadAccount(ctx context.Context, id domain.AccountID, baselineDate time.Time) (*domain.Account, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)", int64(id)).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("account %d: %w", id, domain.ErrAccountNotFound)
	}

	// Net balance of everything strictly before the window start. A
	// self-transfer appears on both sides of the subtraction and nets out.
	var baseline decimal.Decimal
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(
			CASE WHEN target_account_id = $1 THEN amount ELSE 0 END -
			CASE WHEN source_account_id = $1 THEN amount ELSE 0 END
		), 0)
		FROM activities
		WHERE owner_account_id = $1 AND ts < $2`,
		int64(id), baselineDate).Scan(&baseline)
	if err != nil {
		return nil, fmt.Errorf("failed to compute baseline balance: %w", err)
	}
	baselineBalance, err := domain.NewMoneyFromDecimal(baseline)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_account_id, source_account_id, target_account_id, ts, amount
		FROM activities
		WHERE owner_account_id = $1 AND ts >= $2
		ORDER BY ts, id`,
		int64(id), baselineDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return domain.ReconstituteAccount(id, baselineBalance, domain.NewActivityWindow(activities...)), nil
}

// UpdateActivities implements app.UpdateAccountStatePort. It inserts the
// aggregate's unsaved activities in one transaction, holding a row lock on
// the owning account. A no-op when there is nothing to save.
func (r *AccountRepository) UpdateActivities(ctx context.Context, account *domain.Account) error {
	newActivities := account.NewActivities()
	if len(newActivities) == 0 {
		return nil
	}
	id, ok := account.ID()
	if !ok {
		return domain.ErrMissingAccountID
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var locked int64
	if err := tx.QueryRow(ctx, "SELECT id FROM accounts WHERE id = $1 FOR UPDATE", int64(id)).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("account %d: %w", id, domain.ErrAccountNotFound)
		}
		return err
	}

	for _, activity := range newActivities {
		var source, target *int64
		if s, ok := activity.Source(); ok {
			v := int64(s)
			source = &v
		}
		if t, ok := activity.Target(); ok {
			v := int64(t)
			target = &v
		}
		var activityID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO activities (owner_account_id, source_account_id, target_account_id, ts, amount)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			int64(activity.Owner()), source, target, activity.Timestamp(), activity.Amount().Amount()).Scan(&activityID)
		if err != nil {
			return fmt.Errorf("failed to insert activity: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// ListActivities returns a page of the account's ledger, newest first,
// along with the total entry count.
func (r *AccountRepository) ListActivities(ctx context.Context, id domain.AccountID, limit, offset int) ([]domain.Activity, int, error) {
	var total int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM activities WHERE owner_account_id = $1", int64(id)).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, owner_account_id, source_account_id, target_account_id, ts, amount
		FROM activities
		WHERE owner_account_id = $1
		ORDER BY ts DESC, id DESC
		LIMIT $2 OFFSET $3`,
		int64(id), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, 0, err
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return activities, total, nil
}

func scanActivity(rows pgx.Rows) (domain.Activity, error) {
	var (
		activityID int64
		owner      int64
		source     *int64
		target     *int64
		ts         time.Time
		amount     decimal.Decimal
	)
	if err := rows.Scan(&activityID, &owner, &source, &target, &ts, &amount); err != nil {
		return domain.Activity{}, err
	}

	money, err := domain.NewMoneyFromDecimal(amount)
	if err != nil {
		return domain.Activity{}, err
	}
	var sourceID, targetID *domain.AccountID
	if source != nil {
		v := domain.AccountID(*source)
		sourceID = &v
	}
	if target != nil {
		v := domain.AccountID(*target)
		targetID = &v
	}
	return domain.ReconstituteActivity(domain.ActivityID(activityID), domain.AccountID(owner), sourceID, targetID, ts, money)
}
