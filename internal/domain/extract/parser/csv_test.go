package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCSV(t *testing.T) {
	t.Run("strict canonical headers", func(t *testing.T) {
		text := "Date,Description,Amount,Category\n" +
			"2024-03-14,Tim Hortons,5.75,Food\n" +
			"2024-03-15,Petro Canada,60.00,Transport\n"
		got, flexible, err := ExtractCSV(text)
		require.NoError(t, err)
		assert.False(t, flexible)
		require.Len(t, got, 2)
		assert.Equal(t, "2024-03-14", got[0].DateText)
		assert.Equal(t, "Tim Hortons", got[0].Description)
		assert.Equal(t, "5.75", got[0].AmountText)
		assert.Equal(t, "Food", got[0].CategoryText)
		assert.Equal(t, "Transport", got[1].CategoryText)
	})

	t.Run("strict without category column", func(t *testing.T) {
		text := "date,description,amount\n2024-03-14,Tim Hortons,5.75\n"
		got, flexible, err := ExtractCSV(text)
		require.NoError(t, err)
		assert.False(t, flexible)
		require.Len(t, got, 1)
		assert.Empty(t, got[0].CategoryText)
	})

	t.Run("renamed headers fall through to sniffing", func(t *testing.T) {
		text := "Posting Date,Merchant,Debit\n" +
			"03/14/2024,Tim Hortons,5.75\n" +
			"03/15/2024,Petro Canada,60.00\n"
		got, flexible, err := ExtractCSV(text)
		require.NoError(t, err)
		assert.True(t, flexible)
		require.Len(t, got, 2)
		assert.Equal(t, "03/14/2024", got[0].DateText)
		assert.Equal(t, "Tim Hortons", got[0].Description)
		assert.Equal(t, "5.75", got[0].AmountText)
	})

	t.Run("headerless columns inferred from data", func(t *testing.T) {
		text := "Col1,Col2,Col3\n" +
			"03/14/2024,Tim Hortons,5.75\n" +
			"03/15/2024,Petro Canada,60.00\n"
		got, flexible, err := ExtractCSV(text)
		require.NoError(t, err)
		assert.True(t, flexible)
		require.Len(t, got, 2)
		assert.Equal(t, "Petro Canada", got[1].Description)
	})

	t.Run("quoted description containing the separator", func(t *testing.T) {
		text := "Col1,Col2,Col3\n" +
			"03/14/2024,\"Hortons, Tim\",5.75\n" +
			"03/15/2024,Petro Canada,60.00\n"
		got, flexible, err := ExtractCSV(text)
		require.NoError(t, err)
		assert.True(t, flexible)
		require.Len(t, got, 2)
		assert.Equal(t, "Hortons, Tim", got[0].Description)
	})

	t.Run("semicolon separator", func(t *testing.T) {
		text := "date;description;amount\n2024-03-14;Tim Hortons;5.75\n"
		got, _, err := ExtractCSV(text)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Tim Hortons", got[0].Description)
	})

	t.Run("rows missing amount are skipped", func(t *testing.T) {
		text := "date,description,amount\n" +
			"2024-03-14,Tim Hortons,5.75\n" +
			"2024-03-15,Pending hold,\n"
		got, _, err := ExtractCSV(text)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("header only is an error", func(t *testing.T) {
		_, _, err := ExtractCSV("date,description,amount\n")
		assert.Error(t, err)
	})
}
