package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneysaving/internal/core"
)

func TestWrite(t *testing.T) {
	txs := []core.Transaction{
		{ID: 3, Title: `Dinner, "fancy"`, Amount: 0.1 + 0.2, Type: core.TypeExpense, Date: core.NewDate(2024, 2, 14), Source: "Bank", Purpose: "Makanan"},
		{ID: 1, Title: "Salary", Amount: 5000000, Type: core.TypeIncome, Date: core.NewDate(2024, 1, 1), Source: "Bank", Purpose: "Gaji"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, txs))

	want := "id,title,amount,type,date,source,purpose\n" +
		`3,"Dinner, ""fancy""",0.3,expense,2024-02-14,"Bank","Makanan"` + "\n" +
		`1,"Salary",5000000,income,2024-01-01,"Bank","Gaji"` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "id,title,amount,type,date,source,purpose\n", buf.String())
}

func TestReadRoundTrip(t *testing.T) {
	in := []core.Transaction{
		{ID: 9, Title: `Quote "me"`, Amount: 12.5, Type: core.TypeExpense, Date: core.NewDate(2024, 3, 1), Source: "Cash", Purpose: "Hiburan"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)

	want := in[0]
	want.ID = 0
	assert.Equal(t, want, got[0])
}

func TestReadColumnsByName(t *testing.T) {
	data := "Purpose,Source,Date,Type,Amount,Title\n" +
		"Gaji,Bank,2024-01-31,Income,\"1.500.000\",Salary\n"

	got, err := Read(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Salary", got[0].Title)
	assert.Equal(t, 1500000.0, got[0].Amount)
	assert.Equal(t, core.TypeIncome, got[0].Type)
	assert.Equal(t, core.NewDate(2024, 1, 31), got[0].Date)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "MissingColumn",
			data:    "title,amount,type,date,source\nA,1,income,2024-01-01,Bank\n",
			wantErr: ErrMissingColumn,
		},
		{
			name:    "BadAmount",
			data:    "title,amount,type,date,source,purpose\nA,1,income,2024-01-01,Bank,Gaji\nB,-4,expense,2024-01-01,Bank,Tagihan\n",
			wantErr: core.ErrInvalidAmount,
			wantMsg: "row 3",
		},
		{
			name:    "BadType",
			data:    "title,amount,type,date,source,purpose\nA,1,transfer,2024-01-01,Bank,Gaji\n",
			wantErr: core.ErrInvalidType,
			wantMsg: "row 2",
		},
		{
			name:    "BadDate",
			data:    "title,amount,type,date,source,purpose\nA,1,income,01/02/2024,Bank,Gaji\n",
			wantErr: core.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.data))
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestReadEmpty(t *testing.T) {
	got, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}
