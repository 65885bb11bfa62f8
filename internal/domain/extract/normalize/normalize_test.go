package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlatten_JoinsWrappedTransactionLines(t *testing.T) {
	raw := "03/14/2024 TIM HORTONS #245\nTORONTO ON 5.75\n03/15/2024 ESSO 45.00\n"
	got := Flatten(raw)
	assert.Equal(t, "03/14/2024 TIM HORTONS #245 TORONTO ON 5.75\n03/15/2024 ESSO 45.00", got)
}

func TestFlatten_NormalizesLineEndings(t *testing.T) {
	got := Flatten("a\r\nb\rc\n")
	assert.Equal(t, "a\nb\nc", got)
}

func TestFlatten_DropsBlankLines(t *testing.T) {
	got := Flatten("one\n\n\ntwo\n")
	assert.Equal(t, "one\ntwo", got)
}

func TestFlatten_DoesNotJoinAcrossNewTransaction(t *testing.T) {
	// Second line opens its own transaction; no join even though the first
	// line has no amount.
	raw := "03/14/2024 PENDING\n03/15/2024 ESSO 45.00"
	got := Flatten(raw)
	assert.Equal(t, raw, got)
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "TIM HORTONS #245", CollapseSpaces("  TIM   HORTONS\t #245 "))
}

func TestTruncateDescription(t *testing.T) {
	assert.Equal(t, "short", TruncateDescription("short", 50))
	long := make([]byte, 60)
	for i := range long {
		long[i] = 'x'
	}
	got := TruncateDescription(string(long), 50)
	assert.Len(t, got, 53)
	assert.Equal(t, "...", got[50:])
}

func TestDetectSeparator(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   rune
	}{
		{"comma default", "Date,Description,Amount", ','},
		{"tab", "Date\tDescription\tAmount", '\t'},
		{"semicolon", "Date;Description;Amount", ';'},
		{"semicolon beats tab", "Date;\tDescription;Amount", ';'},
		{"no separator at all", "just a line", ','},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSeparator(tt.header))
		})
	}
}

func TestFields_PlainRow(t *testing.T) {
	got := Fields("2024-01-05,Esso,45.00", ',')
	assert.Equal(t, []string{"2024-01-05", "Esso", "45.00"}, got)
}

func TestFields_QuotedFieldWithSeparator(t *testing.T) {
	got := Fields(`2024-01-05,"Esso, Hwy 7",45.00`, ',')
	assert.Equal(t, []string{"2024-01-05", "Esso, Hwy 7", "45.00"}, got)
}

func TestFields_QuotedFieldSpanningSeveralTokens(t *testing.T) {
	got := Fields(`"a, b, c",1`, ',')
	assert.Equal(t, []string{"a, b, c", "1"}, got)
}

func TestFields_Semicolon(t *testing.T) {
	got := Fields(`05/01/2024;"Caffè; Nero";12,50`, ';')
	assert.Equal(t, []string{"05/01/2024", "Caffè; Nero", "12,50"}, got)
}
