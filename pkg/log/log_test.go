package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFieldConstructors(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		wantType FieldType
	}{
		{name: "string", field: String("k", "v"), wantType: StringType},
		{name: "float64", field: Float64("k", 1.5), wantType: Float64Type},
		{name: "int64", field: Int64("k", -2), wantType: Int64Type},
		{name: "uint64", field: Uint64("k", 2), wantType: Uint64Type},
		{name: "bool", field: Bool("k", true), wantType: BoolType},
		{name: "duration", field: Duration("k", time.Second), wantType: DurationType},
		{name: "any", field: Any("k", struct{}{}), wantType: UnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantType, tt.field.Type)
		})
	}
}

func TestErr(t *testing.T) {
	e := errors.New("boom")
	f := Err(e)

	require.Equal(t, "error", f.Key)
	require.Equal(t, ErrorType, f.Type)
	require.Equal(t, e, f.Value)
}

func TestNop(t *testing.T) {
	l := Nop()

	// Must never panic, at any level, with or without fields.
	l.Debug("d", Float64("x", 1))
	l.Info("i")
	l.Warn("w", Err(errors.New("ignored")))
	l.With(String("k", "v")).Error("e")
}
