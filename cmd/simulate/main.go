package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Drives the running service with the questions the dashboard users actually
// ask, one per pipeline branch.
func main() {
	baseURL := flag.String("url", "http://localhost:3000/api", "API base URL")
	token := flag.String("token", "", "bearer token (cmd/gentoken)")
	flag.Parse()

	if *token == "" {
		color.Red("A bearer token is required: go run ./cmd/gentoken")
		return
	}

	questions := []string{
		"¿Cuántas órdenes pendientes hay?",
		"¿Cuál es el estado de las órdenes?",
		"dame el status de la orden: ORD-1042",
		"muéstrame los reportes del warehouse de boca para la semana 12",
		"¿qué columnas tiene la tabla data_testdata?",
		"dame los movimientos inbound de la última semana",
		"¿qué order class se mueve más en el warehouse?",
	}

	client := &http.Client{Timeout: 120 * time.Second}

	for i, q := range questions {
		color.Cyan("\n%s", strings.Repeat("─", 70))
		color.Yellow("PREGUNTA %d: %s", i+1, q)

		start := time.Now()
		text, structured, err := sendChat(client, *baseURL, *token, q)
		if err != nil {
			color.Red("ERROR: %v", err)
			continue
		}

		color.Green("RESPUESTA (%v):", time.Since(start).Round(time.Millisecond))
		fmt.Println(text)
		if structured != nil {
			color.Magenta("structured_data: %d fila(s)", len(structured))
		} else {
			color.White("structured_data: null")
		}
	}

	color.Cyan("\n✅ Simulación completa")
}

func sendChat(client *http.Client, baseURL, token, question string) (string, []map[string]interface{}, error) {
	payload, _ := json.Marshal(map[string]string{"text": question})

	req, err := http.NewRequest(http.MethodPost, baseURL+"/chat/v1/message", bytes.NewReader(payload))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var envelope struct {
		Data struct {
			Text           string                   `json:"text"`
			StructuredData []map[string]interface{} `json:"structured_data"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", nil, err
	}
	return envelope.Data.Text, envelope.Data.StructuredData, nil
}
