package render_test

import (
	"bytes"
	"testing"

	"github.com/speakeasy-api/openapi-clientgen/operation"
	"github.com/speakeasy-api/openapi-clientgen/render"
	"github.com/speakeasy-api/openapi-clientgen/settings"
	"github.com/speakeasy-api/openapi/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

func descriptors(t *testing.T) []*operation.Descriptor {
	t.Helper()

	s := settings.Default()

	update, err := operation.Project(&operation.RawOperation{
		ID:       "Pets_Update",
		Method:   operation.HTTPMethodPut,
		Path:     "/pets/{petId}",
		Summary:  "Updates a pet.",
		Consumes: []string{"application/json"},
	}, s, "Pet", []*operation.Parameter{
		{Name: "petId", VariableName: "petId", Kind: operation.ParameterKindPath, Type: "long", IsRequired: true},
		{Name: "pet", VariableName: "pet", Kind: operation.ParameterKindBody, Type: "Pet", IsRequired: true},
	}, operation.Responses{
		Items: []*operation.Response{
			{StatusCode: "200", Type: "Pet", Description: "The updated pet.", IsSuccess: true},
		},
		Default: &operation.Response{StatusCode: "default", Type: "Problem"},
	})
	require.NoError(t, err)

	remove, err := operation.Project(&operation.RawOperation{
		ID:     "Pets_Delete",
		Method: operation.HTTPMethodDelete,
		Path:   "/pets/{petId}",
	}, s, operation.VoidType, nil, operation.Responses{})
	require.NoError(t, err)

	return []*operation.Descriptor{update, remove}
}

func TestWrite_JSON_Success(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, descriptors(t), render.FormatJSON))

	out := buf.String()
	require.True(t, gjson.Valid(out), "output should be valid json")

	assert.Equal(t, int64(2), gjson.Get(out, "#").Int())
	assert.Equal(t, "Pets_Update", gjson.Get(out, "0.id").String())
	assert.Equal(t, "Put", gjson.Get(out, "0.httpMethodUpper").String())
	assert.Equal(t, "put", gjson.Get(out, "0.httpMethodLower").String())
	assert.Equal(t, "System.Threading.Tasks.Task<Pet>", gjson.Get(out, "0.resultType").String())
	assert.Equal(t, "The updated pet.", gjson.Get(out, "0.resultDescription").String())
	assert.Equal(t, "pet", gjson.Get(out, "0.contentParameter.name").String())
	assert.True(t, gjson.Get(out, "0.hasContent").Bool())
	assert.Equal(t, []string{"petId", "pet"}, stringsOf(gjson.Get(out, "0.parameters.#.name")))
	assert.Equal(t, []string{"petId"}, stringsOf(gjson.Get(out, "0.pathParameters.#.name")))
	assert.Equal(t, "default", gjson.Get(out, "0.defaultResponse.statusCode").String())
	assert.True(t, gjson.Get(out, "0.hasSuccessResponse").Bool())

	assert.Equal(t, "System.Threading.Tasks.Task", gjson.Get(out, "1.resultType").String())
	assert.False(t, gjson.Get(out, "1.hasResultType").Bool())
	assert.True(t, gjson.Get(out, "1.isGetOrDelete").Bool())
	assert.True(t, gjson.Get(out, "1.queryParameters").IsArray(), "empty groupings should render as lists")
	assert.False(t, gjson.Get(out, "1.contentParameter").Exists())
}

func TestWrite_YAML_Success(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.Write(&buf, descriptors(t), render.FormatYAML))

	var views []render.View
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &views))
	require.Len(t, views, 2)

	assert.Equal(t, "Pets_Update", views[0].ID)
	assert.Equal(t, "Updates a pet.", views[0].Summary)
	assert.Equal(t, "application/json", views[0].Consumes)
	require.NotNil(t, views[0].ContentParameter)
	assert.Equal(t, "Pet", views[0].ContentParameter.Type)
	assert.Equal(t, "Pets_Delete", views[1].ID)
}

func TestWrite_UnsupportedFormat_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := render.Write(&buf, descriptors(t), render.Format("xml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, render.ErrUnsupportedFormat), "error should match ErrUnsupportedFormat")
	assert.Empty(t, buf.String())
}

func stringsOf(result gjson.Result) []string {
	values := []string{}
	for _, r := range result.Array() {
		values = append(values, r.String())
	}
	return values
}
