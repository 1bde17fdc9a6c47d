package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/soporte-mcp/internal/domain/ticket"
)

const (
	consultarTicketsDescription = "Consulta tickets de soporte técnico con filtros opcionales de prioridad y estado. " +
		"Retorna los tickets más recientes primero, con todos sus detalles (id, cliente, asunto, descripción, estado, prioridad, fechas)."

	obtenerEstadisticasDescription = "Obtiene estadísticas agregadas del sistema de soporte: total de tickets, " +
		"distribución según el criterio de agrupación (estado, prioridad o cliente, ordenada de mayor a menor), " +
		"y métricas adicionales (tickets abiertos, tickets urgentes, top 5 clientes)."

	buscarTicketsDescription = "Busca tickets que contengan un texto específico en el asunto, la descripción o ambos. " +
		"La búsqueda no distingue mayúsculas; los comodines SQL (% y _) dentro del texto se interpretan como comodines."
)

// registerTools registers the three query tools against the SDK server.
// Input schemas are inferred from the param structs; results are returned
// as JSON text content.
func registerTools(server *sdkmcp.Server, tickets *ticket.Service) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "consultar_tickets",
		Description: consultarTicketsDescription,
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in ConsultarTicketsParams) (*sdkmcp.CallToolResult, any, error) {
		result, err := tickets.List(ctx, ticket.ListRequest{
			Priority: in.Prioridad,
			Status:   in.Estado,
			Limit:    limitOrDefault(in.Limite),
		})
		if err != nil {
			return nil, nil, mapError(err)
		}
		return jsonResult(TicketListResponse{Total: len(result), Tickets: result})
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "obtener_estadisticas",
		Description: obtenerEstadisticasDescription,
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in ObtenerEstadisticasParams) (*sdkmcp.CallToolResult, any, error) {
		stats, err := tickets.Stats(ctx, in.AgruparPor)
		if err != nil {
			return nil, nil, mapError(err)
		}
		return jsonResult(stats)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "buscar_tickets_por_texto",
		Description: buscarTicketsDescription,
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in BuscarTicketsParams) (*sdkmcp.CallToolResult, any, error) {
		result, err := tickets.Search(ctx, ticket.SearchRequest{
			Query: in.Busqueda,
			Field: in.Campo,
			Limit: limitOrDefault(in.Limite),
		})
		if err != nil {
			return nil, nil, mapError(err)
		}
		return jsonResult(TicketListResponse{Total: len(result), Tickets: result})
	})
}

// limitOrDefault distinguishes an omitted limit from an explicit zero: an
// omitted limit gets the default, an explicit out-of-range value is clamped
// by the service.
func limitOrDefault(limit *int) int {
	if limit == nil {
		return ticket.DefaultLimit
	}
	return *limit
}

func jsonResult(v any) (*sdkmcp.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(data)}},
	}, nil, nil
}
