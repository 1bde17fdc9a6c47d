package mcp

import "github.com/ganot/soporte-mcp/internal/domain/ticket"

// ConsultarTicketsParams are the arguments of the consultar_tickets tool.
type ConsultarTicketsParams struct {
	Prioridad string `json:"prioridad,omitempty" jsonschema:"Filtra por prioridad: baja | media | alta | urgente"`
	Estado    string `json:"estado,omitempty" jsonschema:"Filtra por estado: abierto | cerrado"`
	Limite    *int   `json:"limite,omitempty" jsonschema:"Número máximo de tickets a retornar (default 20; max 100)"`
}

// ObtenerEstadisticasParams are the arguments of the obtener_estadisticas tool.
type ObtenerEstadisticasParams struct {
	AgruparPor string `json:"agrupar_por,omitempty" jsonschema:"Criterio de agrupación: estado | prioridad | cliente (default estado)"`
}

// BuscarTicketsParams are the arguments of the buscar_tickets_por_texto tool.
type BuscarTicketsParams struct {
	Busqueda string `json:"busqueda" jsonschema:"Texto a buscar; sin distinguir mayúsculas. Los comodines SQL % y _ se interpretan como comodines"`
	Campo    string `json:"campo,omitempty" jsonschema:"Campo donde buscar: asunto | descripcion | ambos (default asunto)"`
	Limite   *int   `json:"limite,omitempty" jsonschema:"Número máximo de resultados (default 20; max 100)"`
}

// TicketListResponse wraps listing and search results. MCP structured
// content must be a JSON object, so the sequence is carried under "tickets".
type TicketListResponse struct {
	Total   int             `json:"total"`
	Tickets []ticket.Ticket `json:"tickets"`
}
