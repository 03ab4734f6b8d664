package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pvieira/go-moneytransfer/internal/domain"
)

func TestManager_MutualExclusion(t *testing.T) {
	m := NewManager()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.LockAccount(1)
			defer m.ReleaseAccount(1)
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestManager_IndependentAccounts(t *testing.T) {
	m := NewManager()

	m.LockAccount(1)
	done := make(chan struct{})
	go func() {
		// A different account must not be blocked by account 1's lock.
		m.LockAccount(2)
		m.ReleaseAccount(2)
		close(done)
	}()
	<-done
	m.ReleaseAccount(1)
}

func TestNoOp(t *testing.T) {
	var l NoOp
	l.LockAccount(domain.AccountID(1))
	l.ReleaseAccount(domain.AccountID(1))
}
