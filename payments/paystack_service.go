package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	config "github.com/fliqhq/fliq-backend/configs"
)

const paystackBaseURL = "https://api.paystack.co"

type Bank struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type ResolvedAccount struct {
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}

type Subaccount struct {
	SubaccountCode   string  `json:"subaccount_code"`
	BusinessName     string  `json:"business_name"`
	PercentageCharge float64 `json:"percentage_charge"`
}

type SubaccountRequest struct {
	BusinessName        string  `json:"business_name"`
	SettlementBank      string  `json:"settlement_bank"`
	AccountNumber       string  `json:"account_number"`
	PercentageCharge    float64 `json:"percentage_charge"`
	PrimaryContactEmail string  `json:"primary_contact_email,omitempty"`
}

type paystackEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

var (
	banksCache    []Bank
	banksMutex    sync.RWMutex
	lastBankFetch time.Time
)

func doRequest(method, path string, payload interface{}, out interface{}) error {
	secret := config.Config("PAYSTACK_SECRET_KEY")
	if secret == "" {
		return fmt.Errorf("PAYSTACK_SECRET_KEY is not set in .env")
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal Paystack payload: %v", err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, paystackBaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create Paystack request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+secret)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach Paystack: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Paystack response: %v", err)
	}

	var envelope paystackEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to decode Paystack response: %v", err)
	}
	if !envelope.Status {
		return fmt.Errorf("paystack error: %s", envelope.Message)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode Paystack data: %v", err)
		}
	}
	return nil
}

// ListBanks fetches the Nigerian bank list, cached for six hours.
func ListBanks() ([]Bank, error) {
	banksMutex.RLock()
	if time.Since(lastBankFetch) < 6*time.Hour && banksCache != nil {
		banks := banksCache
		banksMutex.RUnlock()
		return banks, nil
	}
	banksMutex.RUnlock()

	log.Println("Fetching fresh bank list from Paystack...")
	var banks []Bank
	if err := doRequest("GET", "/bank?currency=NGN", nil, &banks); err != nil {
		return nil, err
	}

	banksMutex.Lock()
	banksCache = banks
	lastBankFetch = time.Now()
	banksMutex.Unlock()

	return banks, nil
}

// ResolveAccount looks up the account name behind a number/bank pair.
func ResolveAccount(accountNumber, bankCode string) (*ResolvedAccount, error) {
	path := fmt.Sprintf("/bank/resolve?account_number=%s&bank_code=%s",
		url.QueryEscape(accountNumber), url.QueryEscape(bankCode))

	var account ResolvedAccount
	if err := doRequest("GET", path, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateSubaccount provisions a settlement subaccount for a provider.
func CreateSubaccount(req SubaccountRequest) (*Subaccount, error) {
	var sub Subaccount
	if err := doRequest("POST", "/subaccount", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubaccount pushes changed bank details to an existing subaccount.
func UpdateSubaccount(code string, req SubaccountRequest) (*Subaccount, error) {
	var sub Subaccount
	if err := doRequest("PUT", "/subaccount/"+url.PathEscape(code), req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
