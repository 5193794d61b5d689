package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomer(t *testing.T) {
	env := newTestEnv(t)

	customer, err := env.customers.CreateCustomer(CreateCustomerRequest{
		Name:  " Arjun Mehta ",
		Phone: "9812345678",
		Email: "arjun@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Arjun Mehta", customer.Name)
	assert.Equal(t, "9812345678", customer.Phone)
	require.NotNil(t, customer.Email)
	assert.Equal(t, "arjun@example.com", *customer.Email)
	assert.False(t, customer.CreatedAt.IsZero())
}

func TestCreateCustomerWithoutEmail(t *testing.T) {
	env := newTestEnv(t)

	customer, err := env.customers.CreateCustomer(CreateCustomerRequest{
		Name:  "Arjun Mehta",
		Phone: "9812345678",
	})
	require.NoError(t, err)
	assert.Nil(t, customer.Email)
}

func TestCreateCustomerValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		req  CreateCustomerRequest
	}{
		{"blank name", CreateCustomerRequest{Name: "  ", Phone: "9812345678"}},
		{"blank phone", CreateCustomerRequest{Name: "Arjun Mehta", Phone: ""}},
		{"bad email", CreateCustomerRequest{Name: "Arjun Mehta", Phone: "9812345678", Email: "not-an-email"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.customers.CreateCustomer(tc.req)
			assert.ErrorIs(t, err, ErrCustomerValidation)
		})
	}

	assert.Zero(t, countRows(t, env.db, "customers"))
}

// Repeat visitors get a fresh row each time; nothing is deduplicated.
func TestCreateCustomerNoDeduplication(t *testing.T) {
	env := newTestEnv(t)

	first := createTestCustomer(t, env)
	second := createTestCustomer(t, env)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, countRows(t, env.db, "customers"))
}

func TestGetCustomerByIDNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.customers.GetCustomerByID(999)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
