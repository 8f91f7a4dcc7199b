package response

import (
	"testing"
	"time"

	"theater_billing/internal/domain/entities"
)

func TestFromStatement(t *testing.T) {
	now := time.Now().UTC()
	s := entities.Statement{
		ID:       "st-1",
		Customer: "BigCo",
		Lines: []entities.StatementLine{
			{PlayID: "hamlet", PlayName: "Hamlet", Audience: 55, Amount: 65000, Credits: 25},
			{PlayID: "as-like", PlayName: "As You Like It", Audience: 35, Amount: 58000, Credits: 12},
		},
		TotalAmount:  123000,
		TotalCredits: 37,
		AmountOwed:   1230,
		Format:       entities.StatementFormatText,
		Status:       entities.StatementStatusIssued,
		Body:         "Statement for BigCo\n",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res := FromStatement(s, 100)
	if res.ID != "st-1" || res.Customer != "BigCo" || res.Status != "issued" || res.Format != "text" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if len(res.Lines) != 2 || res.Lines[0].Play != "Hamlet" || res.Lines[0].AmountFormatted != "$650.00" {
		t.Fatalf("unexpected lines: %+v", res.Lines)
	}
	if res.TotalAmountFormatted != "$1,230.00" || res.AmountOwed != 1230 {
		t.Fatalf("unexpected totals: %+v", res)
	}
}

func TestFromStatements_Empty(t *testing.T) {
	res := FromStatements(nil, 100)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", res)
	}
}

func TestFromCatalog_SortedByID(t *testing.T) {
	res := FromCatalog(entities.PlayCatalog{
		"othello": {Name: "Othello", Type: "tragedy"},
		"as-like": {Name: "As You Like It", Type: "comedy"},
		"hamlet":  {Name: "Hamlet", Type: "tragedy"},
	})
	if len(res) != 3 {
		t.Fatalf("expected 3 plays, got %d", len(res))
	}
	if res[0].ID != "as-like" || res[1].ID != "hamlet" || res[2].ID != "othello" {
		t.Fatalf("unexpected order: %+v", res)
	}
	if res[0].Name != "As You Like It" || res[0].Type != "comedy" {
		t.Fatalf("unexpected play: %+v", res[0])
	}
}
