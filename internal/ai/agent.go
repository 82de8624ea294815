package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kasir-pos/internal/database"
	"kasir-pos/internal/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// RunAgent answers an admin question about the store, letting the model call
// back into the inventory and the sales reports when it needs live data.
func RunAgent(userMessage string, apiKey string) (string, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	today := time.Now().Format("2006-01-02")

	systemPrompt := fmt.Sprintf(`SYSTEM: Today is %s. You are the assistant of a small retail POS.

	RULES:
	1. If the user asks about a product's PRICE or STOCK, call 'check_inventory'
	   and read the answer from the returned JSON. Never say you cannot get it.
	2. If the user asks to change a price by product NAME, first call
	   'check_inventory' to find the ID, then call 'update_product_price'.
	3. For revenue or sales questions use 'get_sales_report'.
	4. For restocking questions use 'low_stock'.

	USER: %s`, today, userMessage)

	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "check_inventory",
					Description: "Get the full product list with ID, name, category, price and stock.",
				},
				{
					Name:        "update_product_price",
					Description: "Update the price of a specific product using its ID",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"product_id": {Type: genai.TypeInteger, Description: "ID of the product"},
							"new_price":  {Type: genai.TypeNumber, Description: "New price"},
						},
						Required: []string{"product_id", "new_price"},
					},
				},
				{
					Name:        "get_sales_report",
					Description: "Get total revenue and transaction count for a date range.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"start_date": {Type: genai.TypeString, Description: "Start date (YYYY-MM-DD)"},
							"end_date":   {Type: genai.TypeString, Description: "End date (YYYY-MM-DD)"},
						},
						Required: []string{"start_date", "end_date"},
					},
				},
				{
					Name:        "low_stock",
					Description: "List the products closest to running out of stock.",
				},
			},
		},
	}

	session := model.StartChat()

	resp, err := session.SendMessage(ctx, genai.Text(systemPrompt))
	if err != nil {
		return "", err
	}

	// One round of tool execution, plus one follow-up call in case the model
	// chained an inventory lookup into a price update.
	for i := 0; i < 2; i++ {
		funcCall, ok := firstFunctionCall(resp)
		if !ok {
			break
		}
		resp, err = dispatchTool(ctx, session, funcCall)
		if err != nil {
			return "", err
		}
	}

	return printResponse(resp), nil
}

func firstFunctionCall(resp *genai.GenerateContentResponse) (genai.FunctionCall, bool) {
	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			return funcCall, true
		}
	}
	return genai.FunctionCall{}, false
}

func dispatchTool(ctx context.Context, session *genai.ChatSession, funcCall genai.FunctionCall) (*genai.GenerateContentResponse, error) {
	switch funcCall.Name {
	case "check_inventory":
		return execCheckInventory(ctx, session)
	case "update_product_price":
		return execUpdatePrice(ctx, session, funcCall.Args)
	case "get_sales_report":
		return execSalesReport(ctx, session, funcCall.Args)
	case "low_stock":
		return execLowStock(ctx, session)
	}
	return nil, fmt.Errorf("model requested unknown tool %q", funcCall.Name)
}

func execCheckInventory(ctx context.Context, session *genai.ChatSession) (*genai.GenerateContentResponse, error) {
	var products []models.Product
	database.DB.Preload("Category").Find(&products)

	type inventoryRow struct {
		ID       uint    `json:"id"`
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
		Stock    int     `json:"stock"`
	}
	rows := make([]inventoryRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, inventoryRow{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category.Name,
			Price:    p.Price,
			Stock:    p.Stock,
		})
	}

	jsonBytes, _ := json.Marshal(rows)

	return session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "check_inventory",
		Response: map[string]interface{}{"inventory": string(jsonBytes)},
	})
}

func execUpdatePrice(ctx context.Context, session *genai.ChatSession, args map[string]interface{}) (*genai.GenerateContentResponse, error) {
	productID := int(args["product_id"].(float64))
	newPrice := args["new_price"].(float64)

	result := database.DB.Model(&models.Product{}).Where("id = ?", productID).Update("price", newPrice)

	status := "updated"
	if result.RowsAffected == 0 {
		status = "product ID not found"
	}

	return session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "update_product_price",
		Response: map[string]interface{}{"status": status, "new_price": newPrice},
	})
}

func execSalesReport(ctx context.Context, session *genai.ChatSession, args map[string]interface{}) (*genai.GenerateContentResponse, error) {
	start, err1 := time.Parse("2006-01-02", args["start_date"].(string))
	end, err2 := time.Parse("2006-01-02", args["end_date"].(string))
	if err1 != nil || err2 != nil {
		return session.SendMessage(ctx, genai.FunctionResponse{
			Name:     "get_sales_report",
			Response: map[string]interface{}{"error": "dates must be in YYYY-MM-DD format"},
		})
	}
	end = end.Add(24*time.Hour - time.Second)

	summary, err := database.GetSalesSummary(start, end)
	if err != nil {
		return nil, err
	}

	return session.SendMessage(ctx, genai.FunctionResponse{
		Name: "get_sales_report",
		Response: map[string]interface{}{
			"revenue":           summary.TotalRevenue,
			"transaction_count": summary.TotalCount,
		},
	})
}

func execLowStock(ctx context.Context, session *genai.ChatSession) (*genai.GenerateContentResponse, error) {
	products, err := database.GetLowStock(5)
	if err != nil {
		return nil, err
	}

	type stockRow struct {
		Name  string `json:"name"`
		Stock int    `json:"stock"`
	}
	rows := make([]stockRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, stockRow{Name: p.Name, Stock: p.Stock})
	}
	jsonBytes, _ := json.Marshal(rows)

	return session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "low_stock",
		Response: map[string]interface{}{"products": string(jsonBytes)},
	})
}

func printResponse(resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return "I completed the action."
}
