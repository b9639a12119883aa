package payments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBankCache(banks []Bank, fetchedAt time.Time) {
	banksMutex.Lock()
	banksCache = banks
	lastBankFetch = fetchedAt
	banksMutex.Unlock()
}

func TestListBanksServesFreshCache(t *testing.T) {
	want := []Bank{
		{Name: "Access Bank", Code: "044"},
		{Name: "Guaranty Trust Bank", Code: "058"},
	}
	seedBankCache(want, time.Now())
	defer seedBankCache(nil, time.Time{})

	banks, err := ListBanks()
	require.NoError(t, err)
	assert.Equal(t, want, banks)
}

func TestListBanksRefetchesAfterExpiry(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "")
	seedBankCache([]Bank{{Name: "Access Bank", Code: "044"}}, time.Now().Add(-7*time.Hour))
	defer seedBankCache(nil, time.Time{})

	// Past the cache window the stale list is not served; without
	// credentials the refresh fails instead.
	_, err := ListBanks()
	require.Error(t, err)
}

func TestDoRequestRequiresSecretKey(t *testing.T) {
	t.Setenv("PAYSTACK_SECRET_KEY", "")

	err := doRequest("GET", "/bank?currency=NGN", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAYSTACK_SECRET_KEY")
}
