package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveFillsClub(t *testing.T) {
	// Host counts as the first approved member.
	club := Club{MaxPeople: 2, CurrentPeople: 1}

	a := ClubMember{}
	require.NoError(t, a.Approve(&club))
	assert.True(t, a.IsApproved)
	assert.Equal(t, 2, club.CurrentPeople)

	b := ClubMember{}
	err := b.Approve(&club)
	assert.ErrorIs(t, err, ErrOverCapacity)
	assert.False(t, b.IsApproved)
	assert.Equal(t, 2, club.CurrentPeople)
}

func TestDenyApprovedMember(t *testing.T) {
	cm := ClubMember{IsApproved: true}
	assert.ErrorIs(t, cm.Deny(), ErrAlreadyApproved)
	assert.True(t, cm.IsApproved)

	pending := ClubMember{}
	assert.NoError(t, pending.Deny())
}

func TestKick(t *testing.T) {
	club := Club{MaxPeople: 5, CurrentPeople: 3}

	member := ClubMember{IsApproved: true}
	require.NoError(t, member.Kick(&club))
	assert.Equal(t, 2, club.CurrentPeople)

	host := ClubMember{IsHost: true, IsApproved: true}
	assert.ErrorIs(t, host.Kick(&club), ErrNotHost)
	assert.Equal(t, 2, club.CurrentPeople)
}

// Approvals run under a club-row lock in the store; with the same exclusion
// in place here, N contenders for C remaining seats admit exactly min(N, C).
func TestConcurrentApprovals(t *testing.T) {
	const applicants = 20

	club := Club{MaxPeople: 5, CurrentPeople: 1}

	var mu sync.Mutex
	var wg sync.WaitGroup
	var approved, rejected int

	for i := 0; i < applicants; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			cm := ClubMember{}

			mu.Lock()
			defer mu.Unlock()
			if err := cm.Approve(&club); err != nil {
				require.ErrorIs(t, err, ErrOverCapacity)
				rejected++
				return
			}
			approved++
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, approved)
	assert.Equal(t, applicants-4, rejected)
	assert.Equal(t, club.MaxPeople, club.CurrentPeople)
}
