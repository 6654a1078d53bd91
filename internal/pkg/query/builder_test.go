package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("requests").
		Select("request_id", "name", "sku").
		Build()

	assert.Equal(t, "SELECT request_id, name, sku FROM requests", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("requests").Build()

	assert.Equal(t, "SELECT * FROM requests", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SingleWhereCondition(t *testing.T) {
	stmt := From("requests").
		Select("request_id", "name").
		Where(Eq("sku", "AB1234")).
		Build()

	assert.Equal(t, "SELECT request_id, name FROM requests WHERE sku = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "AB1234",
	}, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("requests").
		Select("request_id", "name").
		Where(Eq("sku", "AB1234")).
		Where(Eq("active", true)).
		Build()

	assert.Equal(t, "SELECT request_id, name FROM requests WHERE sku = @p0 AND active = @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "AB1234",
		"p1": true,
	}, stmt.Params)
}

func TestBuilder_NullConditions(t *testing.T) {
	stmt := From("requests").
		Select("request_id").
		Where(Eq("team_id", int64(2))).
		Where(IsNull("user_id")).
		Build()

	assert.Equal(t, "SELECT request_id FROM requests WHERE team_id = @p0 AND user_id IS NULL", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": int64(2),
	}, stmt.Params)

	stmt = From("requests").
		Select("request_id").
		Where(IsNotNull("user_id")).
		Build()

	assert.Equal(t, "SELECT request_id FROM requests WHERE user_id IS NOT NULL", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_OrderBy(t *testing.T) {
	stmt := From("requests").
		Select("request_id", "name").
		OrderBy("created_on", Asc).
		Build()

	assert.Equal(t, "SELECT request_id, name FROM requests ORDER BY created_on ASC", stmt.SQL)

	stmt = From("requests").
		Select("request_id", "name").
		OrderBy("created_on", Desc).
		Build()

	assert.Equal(t, "SELECT request_id, name FROM requests ORDER BY created_on DESC", stmt.SQL)
}

func TestBuilder_LimitAndOffset(t *testing.T) {
	stmt := From("requests").
		Select("request_id", "name").
		Limit(10).
		Offset(20).
		Build()

	assert.Equal(t, "SELECT request_id, name FROM requests LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit":  int64(10),
		"offset": int64(20),
	}, stmt.Params)
}

func TestBuilder_Count(t *testing.T) {
	builder := From("requests").
		Select("request_id", "name").
		Where(Eq("sku", "AB1234")).
		Where(Eq("active", true)).
		OrderBy("created_on", Desc).
		Limit(50)

	// Count query reuses WHERE but drops pagination and ordering
	countStmt := builder.Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM requests WHERE sku = @p0 AND active = @p1", countStmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "AB1234",
		"p1": true,
	}, countStmt.Params)

	// Original builder is unchanged (immutability)
	mainStmt := builder.Build()
	assert.Contains(t, mainStmt.SQL, "SELECT request_id, name FROM requests")
	assert.Contains(t, mainStmt.SQL, "LIMIT @limit")
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("requests").Select("request_id")

	stmt1 := base.Where(Eq("active", true)).Build()
	stmt2 := base.Where(Eq("sku", "AB1234")).Build()

	assert.Contains(t, stmt1.SQL, "active = @p0")
	assert.NotContains(t, stmt1.SQL, "sku")

	assert.Contains(t, stmt2.SQL, "sku = @p0")
	assert.NotContains(t, stmt2.SQL, "active")
}
