// Package sheetstore is the pipeline's only data source: it reads the
// Employee_Details and Monthly_Attendance ranges of a Google spreadsheet and
// patches delivery status back into it.
package sheetstore

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/Sanchit24s/payslip-backend/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ValuesAPI is the narrow spreadsheet contract the store needs: read a named
// range, rewrite a range, and patch arbitrary non-contiguous cells in one
// batched call. Tests inject fakes here.
type ValuesAPI interface {
	GetValues(ctx context.Context, spreadsheetId string, readRange string) ([][]interface{}, error)
	UpdateValues(ctx context.Context, spreadsheetId string, writeRange string, values [][]interface{}) error
	BatchUpdateValues(ctx context.Context, spreadsheetId string, patches []ValueRangePatch) error
}

// ValueRangePatch addresses one cell range with its replacement values.
type ValueRangePatch struct {
	Range  string
	Values [][]interface{}
}

type googleValuesAPI struct {
	svc *sheets.Service
}

func (g *googleValuesAPI) GetValues(ctx context.Context, spreadsheetId string, readRange string) ([][]interface{}, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(spreadsheetId, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (g *googleValuesAPI) UpdateValues(ctx context.Context, spreadsheetId string, writeRange string, values [][]interface{}) error {
	_, err := g.svc.Spreadsheets.Values.
		Update(spreadsheetId, writeRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return err
}

func (g *googleValuesAPI) BatchUpdateValues(ctx context.Context, spreadsheetId string, patches []ValueRangePatch) error {
	data := make([]*sheets.ValueRange, 0, len(patches))
	for _, patch := range patches {
		data = append(data, &sheets.ValueRange{Range: patch.Range, Values: patch.Values})
	}
	_, err := g.svc.Spreadsheets.Values.
		BatchUpdate(spreadsheetId, &sheets.BatchUpdateValuesRequest{
			ValueInputOption: "RAW",
			Data:             data,
		}).
		Context(ctx).Do()
	return err
}

var (
	sharedMu  sync.Mutex
	sharedAPI ValuesAPI
)

// SharedValuesAPI returns the process-wide Sheets client, authorizing it on
// first use. Safe for concurrent callers; the sheets.Service is read-only
// after construction.
func SharedValuesAPI(ctx context.Context) (ValuesAPI, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if sharedAPI != nil {
		return sharedAPI, nil
	}

	credB64 := config.GetGoogleCredentialsBase64()
	if credB64 == "" {
		return nil, errors.New("GOOGLE_CREDENTIALS_BASE64 is required")
	}
	credJSON, err := base64.StdEncoding.DecodeString(credB64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode GOOGLE_CREDENTIALS_BASE64: %w", err)
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credJSON),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		config.LogError(config.GetLogger(), "client.go", "SharedValuesAPI", "sheets.NewService", nil, err)
		return nil, err
	}

	sharedAPI = &googleValuesAPI{svc: svc}
	return sharedAPI, nil
}

// ResetSharedValuesAPI drops the cached client. Teardown hook; mainly for
// tests that stub SharedValuesAPI state.
func ResetSharedValuesAPI() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	sharedAPI = nil
}
