package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/speakeasy-api/openapi-clientgen/loader"
	"github.com/speakeasy-api/openapi-clientgen/operation"
	"github.com/speakeasy-api/openapi-clientgen/settings"
	"github.com/speakeasy-api/openapi/errors"
	"github.com/speakeasy-api/openapi/pointer"
	"github.com/speakeasy-api/openapi/swagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customersYAML = `swagger: "2.0"
info:
  title: Customers
  version: 1.0.0
consumes:
  - application/json
produces:
  - application/json
paths:
  /customers/{id}:
    parameters:
      - name: id
        in: path
        required: true
        type: string
        format: uuid
    get:
      operationId: Customers_GetCustomer
      summary: Gets a customer.
      parameters:
        - $ref: "#/parameters/expand"
        - name: X-Request-Id
          in: header
          type: string
          description: Correlation id.
      responses:
        "200":
          description: The customer.
          schema:
            $ref: "#/definitions/Customer"
        "404":
          $ref: "#/responses/NotFound"
        default:
          description: Unexpected error.
          schema:
            $ref: "#/definitions/Problem"
    put:
      operationId: Customers_UpdateCustomer
      deprecated: true
      consumes:
        - application/xml
        - text/plain
      parameters:
        - name: payload
          in: body
          schema:
            type: string
      responses:
        "204":
          description: Updated.
  /customers/{id}/photo:
    get:
      operationId: Customers_GetPhoto
      produces:
        - image/png
      responses:
        "200":
          description: The photo.
          schema:
            type: file
  /customers:
    get:
      parameters:
        - name: tags
          in: query
          type: array
          items:
            type: integer
            format: int64
          collectionFormat: multi
      responses:
        "200":
          description: Customers.
          schema:
            type: array
            items:
              $ref: "#/definitions/Customer"
    post:
      operationId: Customers_Create
      consumes:
        - multipart/form-data
      parameters:
        - name: name
          in: formData
          type: string
        - name: avatar
          in: formData
          type: file
      responses:
        default:
          description: Created customer.
          schema:
            $ref: "#/definitions/Customer"
parameters:
  expand:
    name: expand
    in: query
    type: boolean
responses:
  NotFound:
    description: Not found.
    schema:
      $ref: "#/definitions/Problem"
definitions:
  Customer:
    type: object
  Problem:
    type: object
`

func loadCustomers(t *testing.T) *swagger.Swagger {
	t.Helper()

	doc, _, err := loader.Load(t.Context(), strings.NewReader(customersYAML))
	require.NoError(t, err, "document should load")
	require.NotNil(t, doc)
	return doc
}

func loadSources(t *testing.T, s *settings.Settings) []operation.Source {
	t.Helper()

	sources, err := loader.Sources(loadCustomers(t), s)
	require.NoError(t, err)
	require.Len(t, sources, 5)
	return sources
}

func TestSources_DocumentOrder_Success(t *testing.T) {
	t.Parallel()

	sources := loadSources(t, settings.Default())

	type key struct {
		method operation.HTTPMethod
		path   string
	}
	got := []key{}
	for _, src := range sources {
		got = append(got, key{src.Raw.Method, src.Raw.Path})
	}

	assert.Equal(t, []key{
		{operation.HTTPMethodGet, "/customers/{id}"},
		{operation.HTTPMethodPut, "/customers/{id}"},
		{operation.HTTPMethodGet, "/customers/{id}/photo"},
		{operation.HTTPMethodGet, "/customers"},
		{operation.HTTPMethodPost, "/customers"},
	}, got)
}

func TestSources_Parameters_Success(t *testing.T) {
	t.Parallel()

	src := loadSources(t, settings.Default())[0]

	require.Len(t, src.Parameters, 3)

	id := src.Parameters[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, operation.ParameterKindPath, id.Kind)
	assert.Equal(t, "System.Guid", id.Type)
	assert.True(t, id.IsRequired)

	expand := src.Parameters[1]
	assert.Equal(t, "expand", expand.Name, "local parameter reference should be followed")
	assert.Equal(t, operation.ParameterKindQuery, expand.Kind)
	assert.Equal(t, "bool", expand.Type)
	assert.False(t, expand.IsRequired)

	header := src.Parameters[2]
	assert.Equal(t, operation.ParameterKindHeader, header.Kind)
	assert.Equal(t, "xRequestId", header.VariableName)
	assert.Equal(t, "Correlation id.", header.Description)

	require.Len(t, src.Raw.Parameters, 3)
	assert.Equal(t, operation.ParameterKindHeader, src.Raw.Parameters[2].Kind)
	assert.Equal(t, []string{"application/json"}, src.Raw.Consumes, "document consumes should apply when the operation has none")
}

func TestSources_Responses_Success(t *testing.T) {
	t.Parallel()

	src := loadSources(t, settings.Default())[0]

	require.Len(t, src.Responses.Items, 2)
	assert.Equal(t, "200", src.Responses.Items[0].StatusCode)
	assert.True(t, src.Responses.Items[0].IsSuccess)
	assert.Equal(t, "Customer", src.Responses.Items[0].Type)
	assert.Equal(t, "404", src.Responses.Items[1].StatusCode)
	assert.False(t, src.Responses.Items[1].IsSuccess)
	assert.Equal(t, "Problem", src.Responses.Items[1].Type, "local response reference should be followed")
	assert.Equal(t, "Not found.", src.Responses.Items[1].Description)

	require.NotNil(t, src.Responses.Default)
	assert.Equal(t, "default", src.Responses.Default.StatusCode)

	assert.Equal(t, "Customer", src.UnwrappedResultType)
	assert.Equal(t, "Problem", src.ExceptionType, "error responses share a single type")
	assert.Equal(t, "Customers_GetCustomer", src.OperationName)
}

func TestSources_BodyAndFiles_Success(t *testing.T) {
	t.Parallel()

	sources := loadSources(t, settings.Default())

	put := sources[1]
	require.Len(t, put.Parameters, 2, "path level parameter should be merged")
	body := put.Parameters[1]
	assert.Equal(t, operation.ParameterKindBody, body.Kind)
	assert.Equal(t, "string", body.Type)
	assert.True(t, body.IsXMLBodyParameter)
	assert.True(t, put.Raw.Parameters[1].XMLBody)
	assert.True(t, put.Raw.Deprecated)
	assert.Equal(t, operation.VoidType, put.UnwrappedResultType)

	photo := sources[2]
	assert.Equal(t, "FileResponse", photo.UnwrappedResultType)
	require.Len(t, photo.Responses.Items, 1)
	assert.True(t, photo.Responses.Items[0].IsFile)

	list := sources[3]
	assert.Equal(t, "GetCustomers", list.OperationName, "missing operation id should fall back to path and method")
	require.Len(t, list.Parameters, 1)
	assert.Equal(t, "System.Collections.Generic.ICollection<long>", list.Parameters[0].Type)
	assert.True(t, list.Parameters[0].IsArray)
	assert.Equal(t, "multi", list.Parameters[0].CollectionFormat)
	assert.Equal(t, "System.Collections.Generic.ICollection<Customer>", list.UnwrappedResultType)

	create := sources[4]
	require.Len(t, create.Parameters, 2)
	assert.Equal(t, operation.ParameterKindFormData, create.Parameters[1].Kind)
	assert.Equal(t, loader.FileParameterType, create.Parameters[1].Type)
	assert.True(t, create.Parameters[1].IsFile)
	assert.Equal(t, "Customer", create.UnwrappedResultType, "only default response should provide the result")
	assert.Empty(t, create.ExceptionType)
}

func TestSources_Project_Success(t *testing.T) {
	t.Parallel()

	s := settings.Default()
	s.WrapSuccessResponses = true
	sources := loadSources(t, s)

	get, err := sources[0].Project(s)
	require.NoError(t, err)
	assert.Equal(t, "System.Threading.Tasks.Task<SwaggerResponse<Customer>>", get.ResultType())
	assert.Equal(t, "The customer.", get.ResultDescription())
	assert.Equal(t, "Problem", get.ExceptionType())
	assert.Len(t, get.PathParameters(), 1)
	assert.Len(t, get.QueryParameters(), 1)
	assert.Len(t, get.HeaderParameters(), 1)
	assert.True(t, get.HasDocumentation())

	put, err := sources[1].Project(s)
	require.NoError(t, err)
	assert.Equal(t, "application/xml", put.Consumes())
	assert.True(t, put.HasContent())
	assert.True(t, put.HasXMLBodyParameter())
	assert.Equal(t, "System.Threading.Tasks.Task<SwaggerResponse>", put.ResultType())

	photo, err := sources[2].Project(s)
	require.NoError(t, err)
	assert.Equal(t, "System.Threading.Tasks.Task<FileResponse>", photo.ResultType())
	assert.Equal(t, "image/png", photo.Produces())

	create, err := sources[4].Project(s)
	require.NoError(t, err)
	assert.True(t, create.HasOnlyDefaultResponse())
	assert.True(t, create.HasFormParameters())
	assert.Equal(t, settings.DefaultExceptionType, create.ExceptionType())
}

func TestSources_TypeScriptProfile_Success(t *testing.T) {
	t.Parallel()

	s := settings.Default()
	s.Profile = settings.ProfileTypeScript
	sources := loadSources(t, s)

	list := sources[3]
	assert.Equal(t, "number[]", list.Parameters[0].Type)
	assert.Equal(t, "Customer[]", list.UnwrappedResultType)
	assert.Equal(t, "string", sources[0].Parameters[0].Type)

	d, err := list.Project(s)
	require.NoError(t, err)
	assert.Equal(t, "Customer[]", d.ResultType())
}

func TestSources_ResultTypeOverride_Success(t *testing.T) {
	t.Parallel()

	s := settings.Default()
	s.ResultTypeOverride = pointer.From("BlobResponse")

	photo := loadSources(t, s)[2]
	assert.Equal(t, "BlobResponse", photo.UnwrappedResultType)

	d, err := photo.Project(s)
	require.NoError(t, err)
	assert.Equal(t, "System.Threading.Tasks.Task<BlobResponse>", d.ResultType())
}

func TestSources_OperationNaming_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		naming   settings.OperationNaming
		expected []string
	}{
		{
			naming:   settings.OperationNamingOperationID,
			expected: []string{"Customers_GetCustomer", "Customers_UpdateCustomer", "Customers_GetPhoto", "GetCustomers", "Customers_Create"},
		},
		{
			naming:   settings.OperationNamingOperationIDSuffix,
			expected: []string{"GetCustomer", "UpdateCustomer", "GetPhoto", "GetCustomers", "Create"},
		},
		{
			naming:   settings.OperationNamingPathAndMethod,
			expected: []string{"GetCustomers", "PutCustomers", "GetCustomersPhoto", "GetCustomers", "PostCustomers"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.naming), func(t *testing.T) {
			t.Parallel()

			s := settings.Default()
			s.OperationNaming = tt.naming

			names := []string{}
			for _, src := range loadSources(t, s) {
				names = append(names, src.OperationName)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestOperationName_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		naming      settings.OperationNaming
		operationID string
		path        string
		method      operation.HTTPMethod
		expected    string
	}{
		{name: "suffix without underscore", naming: settings.OperationNamingOperationIDSuffix, operationID: "listPets", expected: "listPets"},
		{name: "suffix with trailing underscore", naming: settings.OperationNamingOperationIDSuffix, operationID: "pets_", expected: "pets_"},
		{name: "dashed path segments", naming: settings.OperationNamingPathAndMethod, path: "/pet-store/v1/{petId}/owner", method: operation.HTTPMethodDelete, expected: "DeletePetStoreV1Owner"},
		{name: "root path", naming: settings.OperationNamingPathAndMethod, path: "/", method: operation.HTTPMethodHead, expected: "Head"},
		{name: "empty id falls back", naming: settings.OperationNamingOperationID, path: "/pets", method: operation.HTTPMethodPatch, expected: "PatchPets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, loader.OperationName(tt.naming, tt.operationID, tt.path, tt.method))
		})
	}
}

func TestSources_UnresolvableReference_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ref  string
	}{
		{name: "missing local parameter", ref: "#/parameters/missing"},
		{name: "external parameter", ref: "common.yaml#/parameters/limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			yml := `swagger: "2.0"
info:
  title: Broken
  version: 1.0.0
paths:
  /pets:
    get:
      operationId: listPets
      parameters:
        - $ref: "` + tt.ref + `"
      responses:
        "200":
          description: OK
`
			doc, _, err := loader.Load(t.Context(), strings.NewReader(yml))
			require.NoError(t, err)

			_, err = loader.Sources(doc, settings.Default())
			require.Error(t, err)
			assert.True(t, errors.Is(err, loader.ErrInvalidDocument), "error should match ErrInvalidDocument")
			assert.Contains(t, err.Error(), "/pets")
		})
	}
}

func TestSources_NilDocument_Error(t *testing.T) {
	t.Parallel()

	_, err := loader.Sources(nil, settings.Default())
	require.ErrorIs(t, err, loader.ErrInvalidDocument)
}

func TestLoadFile_Success(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "customers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(customersYAML), 0o600))

	doc, _, err := loader.LoadFile(t.Context(), path)
	require.NoError(t, err)
	assert.Equal(t, "Customers", doc.GetInfo().Title)
}

func TestLoadFile_Error(t *testing.T) {
	t.Parallel()

	_, _, err := loader.LoadFile(t.Context(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_UnsupportedVersion_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yml  string
	}{
		{name: "openapi 3 document", yml: "openapi: 3.1.0\ninfo:\n  title: Pets\n  version: 1.0.0\npaths: {}\n"},
		{name: "swagger 3", yml: "swagger: \"3.0\"\ninfo:\n  title: Pets\n  version: 1.0.0\npaths: {}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := loader.Load(t.Context(), strings.NewReader(tt.yml))
			require.ErrorIs(t, err, loader.ErrInvalidDocument)
		})
	}
}
