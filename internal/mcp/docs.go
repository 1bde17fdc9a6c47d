package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `soporte-mcp expone una base de datos de tickets de soporte técnico, de solo lectura.

Modelo de datos (una sola tabla, tickets):
- id, cliente, asunto, descripcion (puede ser null), estado, prioridad, fecha_creacion, fecha_actualizacion.
- estado: abierto | cerrado. prioridad: baja | media | alta | urgente.

Herramientas:
1) consultar_tickets(prioridad?, estado?, limite=20) — listado filtrado, más recientes primero.
2) obtener_estadisticas(agrupar_por=estado) — total, distribución (mayor a menor) y métricas adicionales (tickets_abiertos, tickets_urgentes, top_5_clientes).
3) buscar_tickets_por_texto(busqueda, campo=asunto, limite=20) — búsqueda de subcadena sin distinguir mayúsculas; campo=ambos busca en asunto y descripción.

Notas:
- limite siempre se ajusta al rango [1, 100].
- Valores fuera de los conjuntos permitidos producen un error INVALID_ARGUMENT que nombra el valor y las alternativas válidas.
- Si la base de datos no existe todavía, toda herramienta falla con STORE_NOT_FOUND; hay que ejecutar el comando de seeding primero.
- Los comodines SQL (% y _) dentro del texto de búsqueda se interpretan como comodines.
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "soporte://docs/herramientas",
		Name:        "docs_herramientas",
		Title:       "Guía de herramientas de soporte-mcp",
		Description: "Cuándo usar cada herramienta de consulta y cómo interpretar sus resultados.",
		Content: `# soporte-mcp: guía de herramientas

## consultar_tickets

Úsala para revisar tickets individuales o casos concretos.

- ` + "`prioridad`" + ` y ` + "`estado`" + ` son opcionales y se combinan con AND.
- Los valores no distinguen mayúsculas (` + "`URGENTE`" + ` equivale a ` + "`urgente`" + `).
- El resultado viene ordenado por ` + "`fecha_creacion`" + ` descendente.

Ejemplos: "Muéstrame los tickets urgentes abiertos", "Lista los últimos 10 tickets cerrados".

## obtener_estadisticas

Úsala para el panorama general: volúmenes, distribución y clientes con más tickets.

- ` + "`agrupar_por`" + ` acepta ` + "`estado`" + `, ` + "`prioridad`" + ` o ` + "`cliente`" + `.
- ` + "`distribucion`" + ` es un objeto cuyas claves aparecen de mayor a menor cantidad.
- ` + "`metricas_adicionales`" + ` no depende del criterio de agrupación.

Ejemplos: "¿Cuántos tickets tenemos en total?", "¿Qué clientes tienen más tickets?".

## buscar_tickets_por_texto

Úsala para encontrar menciones de errores o tecnologías concretas.

- ` + "`campo`" + ` acepta ` + "`asunto`" + `, ` + "`descripcion`" + ` o ` + "`ambos`" + `.
- La búsqueda es de subcadena, sin distinguir mayúsculas.
- Los comodines SQL dentro de ` + "`busqueda`" + ` (` + "`%`" + `, ` + "`_`" + `) actúan como comodines.

Ejemplos: "Busca tickets sobre 'Error 500'", "Menciones de 'PostgreSQL' en las descripciones".
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
