package ticket

// GroupField is the column a stats aggregation groups by.
type GroupField string

const (
	GroupByStatus   GroupField = "estado"
	GroupByPriority GroupField = "prioridad"
	GroupByClient   GroupField = "cliente"
)

// GroupFields lists the valid grouping criteria.
var GroupFields = []GroupField{GroupByStatus, GroupByPriority, GroupByClient}

// SearchField selects which text columns a search matches against.
type SearchField string

const (
	FieldSubject     SearchField = "asunto"
	FieldDescription SearchField = "descripcion"
	FieldBoth        SearchField = "ambos"
)

// SearchFields lists the valid search targets.
var SearchFields = []SearchField{FieldSubject, FieldDescription, FieldBoth}

// Filter narrows a ticket listing. Zero values mean "no filter"; Limit is
// already clamped by the service before the repository sees it.
type Filter struct {
	Priority Priority
	Status   Status
	Limit    int
}
