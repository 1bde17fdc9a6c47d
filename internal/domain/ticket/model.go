package ticket

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// TimeLayout is the ISO-8601 layout used for the timestamp columns. The
// store keeps timestamps as text in this layout, so lexicographic order
// equals chronological order.
const TimeLayout = "2006-01-02T15:04:05"

// Status is the lifecycle state of a ticket.
type Status string

const (
	StatusOpen   Status = "abierto"
	StatusClosed Status = "cerrado"
)

// Statuses lists the valid ticket states.
var Statuses = []Status{StatusOpen, StatusClosed}

// Priority is the urgency level of a ticket.
type Priority string

const (
	PriorityLow    Priority = "baja"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
	PriorityUrgent Priority = "urgente"
)

// Priorities lists the valid ticket priorities.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// Ticket is one support request. JSON tags carry the store's Spanish column
// names so serialized tickets match the database row shape.
type Ticket struct {
	ID          int64    `json:"id"`
	Client      string   `json:"cliente"`
	Subject     string   `json:"asunto"`
	Description *string  `json:"descripcion"`
	Status      Status   `json:"estado"`
	Priority    Priority `json:"prioridad"`
	CreatedAt   string   `json:"fecha_creacion"`
	UpdatedAt   string   `json:"fecha_actualizacion"`
}

// GroupCount is one bucket of a grouped aggregation.
type GroupCount struct {
	Value string
	Count int
}

// Distribution is an ordered set of grouped counts, highest count first.
// It marshals as a JSON object whose keys appear in slice order, since a Go
// map would lose the descending-count ordering on the wire.
type Distribution []GroupCount

func (d Distribution) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(group.Count))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ClientCount is one entry of the top-clients ranking.
type ClientCount struct {
	Client  string `json:"cliente"`
	Tickets int    `json:"tickets"`
}

// Metrics are the fixed supplementary statistics, independent of the
// grouping criterion.
type Metrics struct {
	OpenTickets   int           `json:"tickets_abiertos"`
	UrgentTickets int           `json:"tickets_urgentes"`
	TopClients    []ClientCount `json:"top_5_clientes"`
}

// Stats is the aggregated view of the whole store.
type Stats struct {
	TotalTickets int          `json:"total_tickets"`
	Distribution Distribution `json:"distribucion"`
	Metrics      Metrics      `json:"metricas_adicionales"`
}
