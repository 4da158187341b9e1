package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swaggerDoc struct {
	Host    string   `json:"host"`
	Schemes []string `json:"schemes"`
}

func fetchDoc(app *fiber.App, host, proto string) (swaggerDoc, error) {
	req := httptest.NewRequest(http.MethodGet, "http://"+host+"/swagger/doc.json", nil)
	if proto != "" {
		req.Header.Set("X-Forwarded-Proto", proto)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		return swaggerDoc{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return swaggerDoc{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var doc swaggerDoc
	err = json.NewDecoder(resp.Body).Decode(&doc)
	return doc, err
}

func TestSwaggerHandler_UsesRequestHost(t *testing.T) {
	app := fiber.New()
	app.Get("/swagger/*", swaggerHandler())

	doc, err := fetchDoc(app, "shop.example.com", "https, http")
	require.NoError(t, err)
	assert.Equal(t, "shop.example.com", doc.Host)
	assert.Equal(t, []string{"https"}, doc.Schemes)

	doc, err = fetchDoc(app, "localhost:8080", "")
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", doc.Host)
	assert.Equal(t, []string{"http"}, doc.Schemes)
}

func TestSwaggerHandler_Concurrent(t *testing.T) {
	app := fiber.New()
	app.Get("/swagger/*", swaggerHandler())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			host := fmt.Sprintf("h%d.example.com", i)
			doc, err := fetchDoc(app, host, "https")
			if assert.NoError(t, err) {
				assert.Equal(t, host, doc.Host)
			}
		}(i)
	}
	wg.Wait()
}
