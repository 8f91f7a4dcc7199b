package statement

import (
	"testing"

	"theater_billing/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hamletSummary(percentFactor int64) Summary {
	return Summary{
		Customer:      "BigCo",
		Lines:         []entities.StatementLine{{PlayID: "hamlet", PlayName: "Hamlet", Audience: 55, Amount: 65000, Credits: 25}},
		TotalAmount:   65000,
		TotalCredits:  25,
		PercentFactor: percentFactor,
	}
}

func TestHTMLRenderer_BindsCurrencyPerSummary(t *testing.T) {
	var r HTMLRenderer

	cents, err := r.Render(hamletSummary(100))
	require.NoError(t, err)
	assert.Contains(t, cents, "<td>$650.00</td>")
	assert.Contains(t, cents, "<em>$650.00</em>")

	thousandths, err := r.Render(hamletSummary(1000))
	require.NoError(t, err)
	assert.Contains(t, thousandths, "<td>$65.00</td>")

	again, err := r.Render(hamletSummary(100))
	require.NoError(t, err)
	assert.Equal(t, cents, again)
}

func TestHTMLRenderer_SharedTemplateIsNotExecuted(t *testing.T) {
	_, err := HTMLRenderer{}.Render(hamletSummary(100))
	require.NoError(t, err)

	_, err = statementHTML.Clone()
	assert.NoError(t, err)
}

func TestTextRenderer_Render(t *testing.T) {
	got, err := TextRenderer{}.Render(hamletSummary(100))
	require.NoError(t, err)
	assert.Equal(t, "Statement for BigCo\n"+
		"  Hamlet: $650.00 (55 seats)\n"+
		"Amount owed is $650.00\n"+
		"You earned 25 credits\n", got)
	assert.Equal(t, "text/plain; charset=utf-8", TextRenderer{}.ContentType())
}
