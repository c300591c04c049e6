package entity

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

// The product list queries filter on deletedAt == nil. Firestore equality
// against null only matches documents that store an explicit null, so the
// field must not be tagged omitempty or every live listing would be written
// without it and vanish from the feed.
func TestProductDeletedAtStoresExplicitNull(t *testing.T) {
	field, ok := reflect.TypeOf(Product{}).FieldByName("DeletedAt")
	require.True(t, ok)

	require.Equal(t, "deletedAt", field.Tag.Get("firestore"))
}
