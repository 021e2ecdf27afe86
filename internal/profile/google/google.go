// Package google reads the user profile out of a Google Sheet, for users
// who keep their finances in a spreadsheet instead of a local file or
// database. The provider is read-only.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"lynq/internal/core"
	ports "lynq/internal/profile"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	profileSheet  string
	expensesSheet string
	weeklySheet   string
	goalsSheet    string
}

var _ ports.Reader = (*Client)(nil)

// NewFromEnv creates a Sheets-backed profile reader using environment
// variables and service-account credentials.
// Required: GOOGLE_SPREADSHEET_ID.
// Optional sheet names: GOOGLE_PROFILE_SHEET_NAME (default "Profile"),
// GOOGLE_EXPENSES_SHEET_NAME (default "Expenses"),
// GOOGLE_WEEKLY_SHEET_NAME (default "Weekly"),
// GOOGLE_GOALS_SHEET_NAME (default "Goals").
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		profileSheet:  envOr("GOOGLE_PROFILE_SHEET_NAME", "Profile"),
		expensesSheet: envOr("GOOGLE_EXPENSES_SHEET_NAME", "Expenses"),
		weeklySheet:   envOr("GOOGLE_WEEKLY_SHEET_NAME", "Weekly"),
		goalsSheet:    envOr("GOOGLE_GOALS_SHEET_NAME", "Goals"),
	}, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// newSheetsService initializes a Sheets service using Service Account
// credentials from GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE,
// or GOOGLE_APPLICATION_CREDENTIALS.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	slog.InfoContext(ctx, "Google Sheets service created")
	return service, nil
}

// ReadProfile implements profile.Reader by assembling a Profile from the
// four sheets. Missing sheets degrade to empty sections rather than
// failing, matching the zero-contribution contract of the aggregator.
func (c *Client) ReadProfile(ctx context.Context) (core.Profile, error) {
	if c.svc == nil {
		return core.Profile{}, errors.New("sheets service not initialized")
	}

	profileRows, err := c.readRange(ctx, c.profileSheet, "A1:B200")
	if err != nil {
		return core.Profile{}, fmt.Errorf("read profile sheet: %w", err)
	}
	expenseRows, _ := c.readRange(ctx, c.expensesSheet, "A1:C500")
	weeklyRows, _ := c.readRange(ctx, c.weeklySheet, "A1:D500")
	goalRows, _ := c.readRange(ctx, c.goalsSheet, "A1:B200")

	return buildProfile(profileRows, expenseRows, weeklyRows, goalRows), nil
}

func (c *Client) readRange(ctx context.Context, sheetName, cells string) ([][]any, error) {
	rng := fmt.Sprintf("%s!%s", sheetName, cells)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rng, err)
	}
	return resp.Values, nil
}
