package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"civic-report-backend/internal/models"
)

func TestTicketID(t *testing.T) {
	assert.Equal(t, "TC-10001", models.TicketID(1))
	assert.Equal(t, "TC-10042", models.TicketID(42))
	assert.Equal(t, "TC-110000", models.TicketID(100000))
}

func TestTicketID_SequentialIDsDifferByOne(t *testing.T) {
	assert.Equal(t, "TC-10007", models.TicketID(7))
	assert.Equal(t, "TC-10008", models.TicketID(8))
}
