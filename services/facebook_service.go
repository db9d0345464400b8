package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const fbGraphBaseURL = "https://graph.facebook.com/v19.0"

// FacebookAdAccount is one ad account visible to the stored token.
type FacebookAdAccount struct {
	ID        string `json:"id"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
}

// FacebookInsights is the spend/impressions summary for one ad account.
type FacebookInsights struct {
	Spend       string `json:"spend"`
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	CPC         string `json:"cpc"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
}

func fbGet(ctx context.Context, path string, query url.Values) ([]byte, error) {
	fullURL := fmt.Sprintf("%s%s?%s", fbGraphBaseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("Facebook API error: %s - %s", resp.Status, string(respBody))
	}
	return respBody, nil
}

// GetFacebookAdAccounts lists the ad accounts the token can read.
func GetFacebookAdAccounts(ctx context.Context, accessToken string) ([]FacebookAdAccount, error) {
	q := url.Values{}
	q.Set("access_token", accessToken)
	q.Set("fields", "id,account_id,name")

	respBody, err := fbGet(ctx, "/me/adaccounts", q)
	if err != nil {
		return nil, err
	}

	var out struct {
		Data []FacebookAdAccount `json:"data"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("failed to decode ad accounts: %w", err)
	}
	return out.Data, nil
}

// GetFacebookInsights fetches the aggregated insights row for an ad account
// over a date range (Graph API act_<id>/insights).
func GetFacebookInsights(ctx context.Context, accessToken, accountID string, since, until time.Time) (*FacebookInsights, error) {
	q := url.Values{}
	q.Set("access_token", accessToken)
	q.Set("fields", "spend,impressions,clicks,cpc")
	q.Set("time_range", fmt.Sprintf(`{"since":"%s","until":"%s"}`,
		since.Format("2006-01-02"), until.Format("2006-01-02")))

	respBody, err := fbGet(ctx, "/act_"+accountID+"/insights", q)
	if err != nil {
		return nil, err
	}

	var out struct {
		Data []FacebookInsights `json:"data"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("failed to decode insights: %w", err)
	}
	if len(out.Data) == 0 {
		return &FacebookInsights{}, nil
	}
	return &out.Data[0], nil
}
