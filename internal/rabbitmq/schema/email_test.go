package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmailUnmarshalRejectsGarbage(t *testing.T) {
	m := &Email{}
	require.NotNil(t, m.Unmarshal([]byte("not json")))
}

func TestEmailWireFormat(t *testing.T) {
	m := &Email{To: "john@example.com", Subject: "Hi", Body: "Body"}
	data, err := m.Marshal()
	require.Nil(t, err)
	require.Contains(t, string(data), `"to":"john@example.com"`)
	require.Contains(t, string(data), `"subject":"Hi"`)
}
