package interfaces

import "context"

// ILedger abstracts the append-only record of confirmed sales (a Google
// Sheets spreadsheet in production). The row schema is fixed per deployment;
// rows are never updated or deleted.
type ILedger interface {
	Append(ctx context.Context, row []interface{}) error
}
