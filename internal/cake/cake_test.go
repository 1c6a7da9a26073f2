package cake

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBake_ZeroMinutesProducesNoOutput(t *testing.T) {
	var buf bytes.Buffer

	Bake(&buf, 0)

	assert.Empty(t, buf.String())
}

func TestBake_PositiveMinutesPrintsStatus(t *testing.T) {
	var buf bytes.Buffer

	Bake(&buf, 5)

	assert.Equal(t, "Baking for 5mins\n", buf.String())
}

func TestAddFancyIcing(t *testing.T) {
	var buf bytes.Buffer

	AddFancyIcing(&buf)

	assert.Equal(t, "Fancy icing applied\n", buf.String())
}

func TestPutInBox(t *testing.T) {
	var buf bytes.Buffer

	PutInBox(&buf)

	assert.Equal(t, "Cake packed in a gift box\n", buf.String())
}
