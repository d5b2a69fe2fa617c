package gateway

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// StoreClient es el cliente HTTP contra el almacén de datos externo
// (una API REST estilo json-server con colecciones planas).
type StoreClient struct {
	http *resty.Client
	log  *zap.Logger
}

// NewStoreClient crea un cliente para el almacén externo.
func NewStoreClient(baseURL string, timeout time.Duration, log *zap.Logger) *StoreClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &StoreClient{http: client, log: log}
}

// List obtiene todos los documentos de una colección.
func (c *StoreClient) List(collection string) ([]map[string]interface{}, error) {
	var docs []map[string]interface{}
	resp, err := c.http.R().
		SetResult(&docs).
		Get("/" + collection)
	if err != nil {
		return nil, fmt.Errorf("error al listar %s: %w", collection, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error al listar %s: status %d", collection, resp.StatusCode())
	}
	return docs, nil
}

// Get obtiene un documento por id.
func (c *StoreClient) Get(collection, id string) (map[string]interface{}, error) {
	var doc map[string]interface{}
	resp, err := c.http.R().
		SetResult(&doc).
		Get(fmt.Sprintf("/%s/%s", collection, id))
	if err != nil {
		return nil, fmt.Errorf("error al obtener %s/%s: %w", collection, id, err)
	}
	if resp.StatusCode() == 404 {
		return nil, fmt.Errorf("%s/%s no encontrado", collection, id)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error al obtener %s/%s: status %d", collection, id, resp.StatusCode())
	}
	return doc, nil
}

// Create crea un documento nuevo y devuelve el documento con el id asignado
// por el almacén.
func (c *StoreClient) Create(collection string, payload map[string]interface{}) (map[string]interface{}, error) {
	var created map[string]interface{}
	resp, err := c.http.R().
		SetBody(payload).
		SetResult(&created).
		Post("/" + collection)
	if err != nil {
		return nil, fmt.Errorf("error al crear en %s: %w", collection, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error al crear en %s: status %d", collection, resp.StatusCode())
	}
	return created, nil
}

// Patch actualiza campos sueltos de un documento.
func (c *StoreClient) Patch(collection, id string, fields map[string]interface{}) error {
	resp, err := c.http.R().
		SetBody(fields).
		Patch(fmt.Sprintf("/%s/%s", collection, id))
	if err != nil {
		return fmt.Errorf("error al actualizar %s/%s: %w", collection, id, err)
	}
	if resp.IsError() {
		return fmt.Errorf("error al actualizar %s/%s: status %d", collection, id, resp.StatusCode())
	}
	return nil
}

// Put sustituye el documento completo. Con json-server un PUT parcial
// borraría el resto de campos, por eso las ediciones completas van por aquí
// con el documento entero.
func (c *StoreClient) Put(collection, id string, payload map[string]interface{}) error {
	resp, err := c.http.R().
		SetBody(payload).
		Put(fmt.Sprintf("/%s/%s", collection, id))
	if err != nil {
		return fmt.Errorf("error al reemplazar %s/%s: %w", collection, id, err)
	}
	if resp.IsError() {
		return fmt.Errorf("error al reemplazar %s/%s: status %d", collection, id, resp.StatusCode())
	}
	return nil
}

// Delete elimina un documento.
func (c *StoreClient) Delete(collection, id string) error {
	resp, err := c.http.R().
		Delete(fmt.Sprintf("/%s/%s", collection, id))
	if err != nil {
		return fmt.Errorf("error al eliminar %s/%s: %w", collection, id, err)
	}
	if resp.IsError() {
		return fmt.Errorf("error al eliminar %s/%s: status %d", collection, id, resp.StatusCode())
	}
	return nil
}
