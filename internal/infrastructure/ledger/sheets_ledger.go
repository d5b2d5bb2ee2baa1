package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"pazes_checkout/internal/usecase/interfaces"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var ErrMissingSheetsCredentials = errors.New("missing Google Sheets credentials")

const appendRange = "A1"

// SheetsLedger appends confirmed sales to a Google Sheets spreadsheet.
// Append-only: rows are never updated or deleted, the sheet is the audit
// trail of record.

type SheetsLedger struct {
	spreadsheetID string
	service       *sheets.Service
}

var _ interfaces.ILedger = (*SheetsLedger)(nil)

// NewSheetsLedger authenticates with a service account. The private key
// arrives through the environment with literal \n sequences; they are
// restored before use.
func NewSheetsLedger(ctx context.Context, spreadsheetID, serviceAccountEmail, privateKey string) (*SheetsLedger, error) {
	if spreadsheetID == "" || serviceAccountEmail == "" || privateKey == "" {
		return nil, ErrMissingSheetsCredentials
	}

	conf := &jwt.Config{
		Email:      serviceAccountEmail,
		PrivateKey: []byte(strings.ReplaceAll(privateKey, `\n`, "\n")),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}
	log.Printf("[webhook][ledger] Google Sheets ledger initialized spreadsheet_id=%s", spreadsheetID)

	return &SheetsLedger{spreadsheetID: spreadsheetID, service: service}, nil
}

func (l *SheetsLedger) Append(ctx context.Context, row []interface{}) error {
	body := &sheets.ValueRange{Values: [][]interface{}{row}}

	_, err := l.service.Spreadsheets.Values.
		Append(l.spreadsheetID, appendRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append row: %w", err)
	}
	return nil
}
