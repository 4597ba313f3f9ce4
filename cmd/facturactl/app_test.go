package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	mu    sync.Mutex
	paths []string
}

type reply struct {
	status  int
	payload string
}

var defaultReplies = map[string]reply{
	"GET /ObtenerProductos":        {http.StatusOK, `{"data":[{"productoId":1,"nombre":"Widget","codigo":"P-A","precioUnitario":10}]}`},
	"POST /ObtenerFacturas":        {http.StatusOK, `{"success":true,"data":[]}`},
	"POST /EliminarFactura":        {http.StatusOK, `{"success":true,"message":"deleted"}`},
	"POST /ObtenerClientes":        {http.StatusOK, `{"success":true,"data":[{"clienteId":5,"nombre":"Ana Torres","activo":true}]}`},
	"POST /CrearFactura":           {http.StatusOK, `{"success":true,"data":"42"}`},
	"POST /InsertarDetalleFactura": {http.StatusOK, `{"success":true}`},
}

// newBackend serves the default replies, replaced by overrides keyed by
// "<method> <path>".
func newBackend(t *testing.T, overrides ...map[string]reply) *backend {
	t.Helper()
	b := &backend{}

	replies := make(map[string]reply, len(defaultReplies))
	for k, v := range defaultReplies {
		replies[k] = v
	}
	for _, o := range overrides {
		for k, v := range o {
			replies[k] = v
		}
	}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			b.mu.Lock()
			b.paths = append(b.paths, req.Method+" "+req.URL.Path+"?"+req.URL.RawQuery)
			b.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			next.ServeHTTP(w, req)
		})
	})
	for key, rp := range replies {
		method, path, _ := strings.Cut(key, " ")
		rp := rp
		r.MethodFunc(method, path, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(rp.status)
			_, _ = io.WriteString(w, rp.payload)
		})
	}

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	t.Setenv("FACTURAS_API_BASE_URL", srv.URL)
	t.Setenv("FACTURAS_LOG_LEVEL", "error")
	return b
}

func (b *backend) calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.paths...)
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	envFile := filepath.Join(t.TempDir(), "none.env")
	argv := append([]string{"facturactl", "--env-file", envFile}, args...)
	err := newApp(&out, strings.NewReader(stdin)).Run(argv)
	return out.String(), err
}

func TestProductsList(t *testing.T) {
	b := newBackend(t)

	out, err := run(t, "", "products", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"nombre": "Widget"`)
	assert.Equal(t, []string{"GET /ObtenerProductos?"}, b.calls())
}

func TestInvoicesDelete(t *testing.T) {
	t.Run("confirmed_by_flag", func(t *testing.T) {
		b := newBackend(t)

		out, err := run(t, "", "--yes", "invoices", "delete", "42")
		require.NoError(t, err)
		assert.Contains(t, out, "[ok] Invoices: invoice 42 deleted")
		assert.Contains(t, out, `"deleted": true`)
		assert.Equal(t, "POST /EliminarFactura?Id=42", b.calls()[0])
	})

	t.Run("declined_at_prompt", func(t *testing.T) {
		b := newBackend(t)

		out, err := run(t, "n\n", "invoices", "delete", "42")
		require.NoError(t, err)
		assert.Contains(t, out, `"deleted": false`)
		assert.Empty(t, b.calls())
	})

	t.Run("bad_id", func(t *testing.T) {
		newBackend(t)

		_, err := run(t, "", "invoices", "delete", "abc")
		assert.ErrorContains(t, err, "invalid invoice id")
	})
}

func TestInvoicesCreate(t *testing.T) {
	b := newBackend(t)

	out, err := run(t, "", "invoices", "create", "--client", "5", "--method", "Tarjeta", "--line", "1:3")
	require.NoError(t, err)
	assert.Contains(t, out, "[ok] Invoice: invoice created")
	assert.Contains(t, out, `"invoice_id": 42`)

	calls := b.calls()
	require.Len(t, calls, 5)
	assert.True(t, strings.HasPrefix(calls[2], "POST /CrearFactura"))
	assert.True(t, strings.HasPrefix(calls[3], "POST /InsertarDetalleFactura"))
	assert.True(t, strings.HasPrefix(calls[4], "POST /ObtenerFacturas"))
}

func TestWorkerRequiresTemporal(t *testing.T) {
	newBackend(t)

	_, err := run(t, "", "worker")
	assert.ErrorContains(t, err, "FACTURAS_TEMPORAL_HOST")
}

func TestInvoicesCreatePartialSave(t *testing.T) {
	b := newBackend(t, map[string]reply{
		"POST /InsertarDetalleFactura": {http.StatusOK, `{"success":false,"message":"producto sin stock"}`},
	})

	out, err := run(t, "", "invoices", "create", "--client", "5", "--line", "1:3")
	require.NoError(t, err)
	assert.Contains(t, out, "[warning] Invoice: invoice 42 was created but its lines were not saved: producto sin stock")
	assert.Contains(t, out, `"partial": true`)
	assert.Contains(t, out, `"invoice_id": 42`)

	calls := b.calls()
	require.Len(t, calls, 5)
	assert.True(t, strings.HasPrefix(calls[4], "POST /ObtenerFacturas"))
}

func TestInvoicesCreateHeaderRejected(t *testing.T) {
	b := newBackend(t, map[string]reply{
		"POST /CrearFactura": {http.StatusOK, `{"success":false,"message":"cliente inactivo"}`},
	})

	out, err := run(t, "", "invoices", "create", "--client", "5", "--line", "1:3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cliente inactivo")
	assert.Contains(t, out, "[error] Invoice: cliente inactivo")
	for _, c := range b.calls() {
		assert.False(t, strings.HasPrefix(c, "POST /InsertarDetalleFactura"), c)
	}
}

func TestInvoicesCreateValidation(t *testing.T) {
	b := newBackend(t)

	_, err := run(t, "", "invoices", "create", "--client", "5", "--line", "1:0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quantity")
	assert.Empty(t, b.calls())
}

func TestProductsListBackendError(t *testing.T) {
	newBackend(t, map[string]reply{
		"GET /ObtenerProductos": {http.StatusInternalServerError, `{"message":"database offline"}`},
	})

	_, err := run(t, "", "products", "list")
	require.Error(t, err)
	assert.Equal(t, "unavailable: database offline", err.Error())
}
