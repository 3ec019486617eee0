package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Equal(t, SOCV1, c.Name)
	assert.Equal(t, 16, c.Len())
	require.NoError(t, validate(c.Fields))

	// Iteration order is definition order.
	assert.Equal(t, "ThirdPartyServiceProvider", c.Fields[0].Name)
	assert.Equal(t, "SubserviceProvider", c.Fields[15].Name)

	shapes := map[string]Shape{}
	for _, f := range c.Fields {
		shapes[f.Name] = f.Shape
	}
	assert.Equal(t, Scalar, shapes["ReportPeriod"])
	assert.Equal(t, StructuredList, shapes["ControlExceptionIdentified"])
	assert.Equal(t, StructuredList, shapes["ServicesProvided"])
}

func TestBulletedCatalog(t *testing.T) {
	c := Bulleted()
	assert.Equal(t, SOCV2, c.Name)
	require.NoError(t, validate(c.Fields))

	shapes := map[string]Shape{}
	for _, f := range c.Fields {
		shapes[f.Name] = f.Shape
	}
	assert.Equal(t, FlatList, shapes["ServicesProvided"])
	assert.Equal(t, StructuredList, shapes["ControlDescription"])
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		fields []Field
	}{
		{"empty", nil},
		{"duplicate name", []Field{
			{Name: "A", Prompt: "p", Shape: Scalar},
			{Name: "A", Prompt: "p", Shape: Scalar},
		}},
		{"reserved file_name", []Field{
			{Name: FileNameKey, Prompt: "p", Shape: Scalar},
		}},
		{"unknown shape", []Field{
			{Name: "A", Prompt: "p", Shape: Shape("tree")},
		}},
		{"missing prompt", []Field{
			{Name: "A", Shape: Scalar},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, validate(tc.fields))
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "soc-custom.json")
	body := `[
		{"name": "Auditor", "prompt": "Return the auditor name. If not found, return null.", "shape": "scalar"},
		{"name": "Services", "prompt": "List the services, one per line.", "shape": "flat_list"},
		{"name": "Controls", "prompt": "Return a JSON array of controls.", "shape": "structured_list"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "soc-custom", c.Name)
	require.Equal(t, 3, c.Len())
	assert.Equal(t, FlatList, c.Fields[1].Shape)
}

func TestLoadRejectsBadShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	body := `[{"name": "A", "prompt": "p", "shape": "list"}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.json")
	body := `[{"name": "A", "prompt": "p", "shape": "scalar", "weight": 2}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	c, err := Select("")
	require.NoError(t, err)
	assert.Equal(t, SOCV1, c.Name)

	c, err = Select(SOCV2)
	require.NoError(t, err)
	assert.Equal(t, SOCV2, c.Name)

	_, err = Select("no/such/catalog.json")
	assert.Error(t, err)
}
