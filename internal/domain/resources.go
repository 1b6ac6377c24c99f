package domain

// Имена ресурсов, совпадают с сегментом пути /models/<resource>
const (
	ResourceChats            = "chats"
	ResourceGateways         = "gateways"
	ResourcePayments         = "payments"
	ResourceTags             = "tags"
	ResourceTickets          = "tickets"
	ResourcePingData         = "ping-data"
	ResourceTicketData       = "ticket-data"
	ResourcePaymentAliases   = "payment-aliases"
	ResourceMessageTemplates = "message-templates"
)

// Поля-отношения платежа, которые рисуются отдельными блоками
const (
	FieldTagsDetail     = "tags_detail"
	FieldGatewaysDetail = "gateways_detail"
	FieldTagIDs         = "tag_ids"
	FieldGatewayIDs     = "gateway_ids"
)

var timestampAliases = []Alias{
	{Canonical: "created_at", Keys: []string{"created_at", "createdAt"}, Default: ""},
	{Canonical: "updated_at", Keys: []string{"updated_at", "updatedAt"}, Default: ""},
}

func withTimestamps(aliases ...Alias) []Alias {
	return append(aliases, timestampAliases...)
}

// DefaultRegistry возвращает реестр всех ресурсов консоли
func DefaultRegistry() *Registry {
	return NewRegistry(
		Chats(),
		Gateways(),
		Payments(),
		Tags(),
		Tickets(),
		PingData(),
		TicketData(),
		PaymentAliases(),
		MessageTemplates(),
	)
}

func Chats() *Resource {
	return &Resource{
		Name:         ResourceChats,
		Title:        "Chats",
		IDField:      "id",
		IDKind:       NumericID,
		SearchFields: []string{"id", "payment", "chatId"},
		SortKeys: map[string]SortKind{
			"id":         SortNumber,
			"payment":    SortString,
			"chatId":     SortString,
			"operators":  SortLength,
			"template":   SortString,
			"created_at": SortString,
		},
		DefaultSort: "id",
		Columns: []Column{
			{Field: "id", Title: "ID", Sortable: true},
			{Field: "payment", Title: "Payment", Sortable: true},
			{Field: "chatId", Title: "Chat ID", Sortable: true},
			{Field: "operators", Title: "Operators", Sortable: true},
			{Field: "template", Title: "Template", Sortable: true},
			{Field: "created_at", Title: "Created", Sortable: true},
		},
		PageSize:   10,
		Pagination: PaginateClient,
		Aliases: withTimestamps(
			Alias{Canonical: "id", Keys: []string{"id", "_id"}, Default: nil},
			Alias{Canonical: "payment", Keys: []string{"payment"}, Default: ""},
			Alias{Canonical: "chatId", Keys: []string{"chat_id", "chatId"}, Default: ""},
			Alias{Canonical: "operators", Keys: []string{"operators"}, Default: []any{}},
			Alias{Canonical: "template", Keys: []string{"template"}, Default: "with_file"},
		),
		Form: []FormField{
			{Name: "payment", Label: "Payment", Kind: FieldText},
			{Name: "chatId", Label: "Chat ID", Kind: FieldText},
			{Name: "operators", Label: "Operators (comma separated)", Kind: FieldIntList},
			{Name: "template", Label: "Template", Kind: FieldSelect, Options: []string{"with_file", "with_url"}, Default: "with_file"},
		},
		Required:    []string{"payment", "chatId"},
		ForeignKeys: map[string]string{},
		SearchLinks: map[string]string{"payment": ResourcePayments},
		Seed:        seedChats,
	}
}

func Gateways() *Resource {
	return &Resource{
		Name:         ResourceGateways,
		Title:        "Gateways",
		Endpoint:     "/gateways",
		IDField:      "id",
		IDKind:       StringID,
		SearchFields: []string{"id", "name", "payment", "tag"},
		SortKeys: map[string]SortKind{
			"name":       SortString,
			"payment":    SortString,
			"tag":        SortString,
			"created_at": SortString,
		},
		DefaultSort: "name",
		Columns: []Column{
			{Field: "id", Title: "ID"},
			{Field: "name", Title: "Name", Sortable: true},
			{Field: "payment", Title: "Payment", Sortable: true},
			{Field: "tag", Title: "Tag", Sortable: true},
			{Field: "created_at", Title: "Created", Sortable: true},
		},
		PageSize:   10,
		Pagination: PaginateClient,
		Aliases: withTimestamps(
			Alias{Canonical: "id", Keys: []string{"_id", "id"}, Default: ""},
			Alias{Canonical: "name", Keys: []string{"name"}, Default: ""},
			Alias{Canonical: "payment", Keys: []string{"payment_id", "paymentId", "payment"}, Default: ""},
			Alias{Canonical: "tag", Keys: []string{"tag_id", "tagId", "tag"}, Default: ""},
		),
		Form: []FormField{
			{Name: "name", Label: "Name", Kind: FieldText},
			{Name: "payment", Label: "Payment ID", Kind: FieldText},
			{Name: "tag", Label: "Tag ID", Kind: FieldText},
		},
		Required:    []string{"name"},
		ForeignKeys: map[string]string{"payment": ResourcePayments, "tag": ResourceTags},
		Writable:    true,
		Seed:        seedGateways,
	}
}

func Payments() *Resource {
	return &Resource{
		Name:         ResourcePayments,
		Title:        "Payments",
		Endpoint:     "/payments",
		IDField:      "id",
		IDKind:       StringID,
		SearchFields: []string{"id", "name"},
		SortKeys: map[string]SortKind{
			"name":        SortString,
			"tag_ids":     SortLength,
			"gateway_ids": SortLength,
			"created_at":  SortString,
		},
		DefaultSort: "name",
		Columns: []Column{
			{Field: "id", Title: "ID"},
			{Field: "name", Title: "Name", Sortable: true},
			{Field: FieldTagIDs, Title: "Tags", Sortable: true},
			{Field: FieldGatewayIDs, Title: "Gateways", Sortable: true},
			{Field: "created_at", Title: "Created", Sortable: true},
		},
		PageSize:   10,
		Pagination: PaginateClient,
		Aliases: withTimestamps(
			Alias{Canonical: "id", Keys: []string{"_id", "id"}, Default: ""},
			Alias{Canonical: "name", Keys: []string{"name"}, Default: ""},
			Alias{Canonical: FieldTagIDs, Keys: []string{"tag_ids", "tagIds"}, Default: []any{}},
			Alias{Canonical: FieldGatewayIDs, Keys: []string{"gateway_ids", "gatewayIds"}, Default: []any{}},
			Alias{Canonical: FieldTagsDetail, Keys: []string{"tags_detail", "tagsDetail"}, Default: []any{}},
			Alias{Canonical: FieldGatewaysDetail, Keys: []string{"gateways_detail", "gatewaysDetail"}, Default: []any{}},
		),
		Form: []FormField{
			{Name: "name", Label: "Name", Kind: FieldText},
		},
		Required:     []string{"name"},
		ForeignKeys:  map[string]string{FieldTagIDs: ResourceTags, FieldGatewayIDs: ResourceGateways},
		HiddenFields: []string{FieldTagsDetail, FieldGatewaysDetail, FieldTagIDs, FieldGatewayIDs},
		Seed:         seedPayments,
	}
}

func Tags() *Resource {
	return &Resource{
		Name:         ResourceTags,
		Title:        "Tags",
		Endpoint:     "/tags",
		IDField:      "id",
		IDKind:       StringID,
		SearchFields: []string{"id", "uuid", "name", "paymentId"},
		SortKeys: map[string]SortKind{
			"name":             SortString,
			"paymentId":        SortString,
			"excludeInProcess": SortBool,
			"gateways":         SortLength,
			"created_at":       SortString,
		},
		DefaultSort: "name",
		Columns: []Column{
			{Field: "uuid", Title: "UUID"},
			{Field: "name", Title: "Name", Sortable: true},
			{Field: "paymentId", Title: "Payment", Sortable: true},
			{Field: "excludeInProcess", Title: "Excluded", Sortable: true},
			{Field: "gateways", Title: "Gateways", Sortable: true},
			{Field: "created_at", Title: "Created", Sortable: true},
		},
		PageSize:   10,
		Pagination: PaginateClient,
		Aliases: withTimestamps(
			Alias{Canonical: "id", Keys: []string{"_id", "id"}, Default: ""},
			Alias{Canonical: "uuid", Keys: []string{"uuid"}, Default: ""},
			Alias{Canonical: "name", Keys: []string{"name"}, Default: ""},
			Alias{Canonical: "paymentId", Keys: []string{"payment_id", "paymentId"}, Default: ""},
			Alias{Canonical: "excludeInProcess", Keys: []string{"exclude_in_process", "excludeInProcess"}, Default: false},
			Alias{Canonical: "gateways", Keys: []string{"gateways", "gateway_ids", "gatewayIds"}, Default: []any{}},
		),
		Form: []FormField{
			{Name: "name", Label: "Name", Kind: FieldText},
			{Name: "paymentId", Label: "Payment ID", Kind: FieldText},
			{Name: "excludeInProcess", Label: "Exclude in process", Kind: FieldBool},
			{Name: "gateways", Label: "Gateways (comma separated)", Kind: FieldStringList},
		},
		Required:    []string{"name"},
		ForeignKeys: map[string]string{"paymentId": ResourcePayments, "gateways": ResourceGateways},
		Writable:    true,
		Seed:        seedTags,
	}
}

func Tickets() *Resource {
	return &Resource{
		Name:         ResourceTickets,
		Title:        "Tickets",
		Endpoint:     "/tickets",
		IDField:      "id",
		IDKind:       NumericID,
		SearchFields: []string{"id", "uuid", "subject", "status", "agent", "team"},
		SortKeys: map[string]SortKind{
			"id":         SortNumber,
			"status":     SortString,
			"subject":    SortString,
			"priority":   SortString,
			"created_at": SortString,
		},
		DefaultSort: "id",
		Columns: []Column{
			{Field: "id", Title: "ID", Sortable: true},
			{Field: "status", Title: "Status", Sortable: true},
			{Field: "subject", Title: "Subject", Sortable: true},
			{Field: "priority", Title: "Priority", Sortable: true},
			{Field: "agent", Title: "Agent"},
			{Field: "created_at", Title: "Created", Sortable: true},
		},
		PageSize:   10,
		Pagination: PaginateClient,
		Aliases: withTimestamps(
			Alias{Canonical: "id", Keys: []string{"id", "_id"}, Default: nil},
			Alias{Canonical: "uuid", Keys: []string{"uuid"}, Default: ""},
			Alias{Canonical: "status", Keys: []string{"status"}, Default: "open"},
			Alias{Canonical: "subject", Keys: []string{"subject"}, Default: ""},
			Alias{Canonical: "team", Keys: []string{"team", "team_name", "teamName"}, Default: nil},
			Alias{Canonical: "agent", Keys: []string{"agent", "agent_name", "agentName"}, Default: nil},
			Alias{Canonical: "priority", Keys: []string{"priority"}, Default: nil},
		),
		Form: []FormField{
			{Name: "subject", Label: "Subject", Kind: FieldText},
			{Name: "status", Label: "Status", Kind: FieldSelect, Options: []string{"pending", "open", "solved", "closed"}, Default: "open"},
			{Name: "priority", Label: "Priority", Kind: FieldSelect, Options: []string{"", "low", "normal", "high", "urgent"}},
		},
		Required: []string{"status"},
		Seed:     seedTickets,
	}
}

func PingData() *Resource {
	return &Resource{
		Name:         ResourcePingData,
		Title:        "Ping data",
		Endpoint:     "/ping-data",
		IDField:      "id",
		IDKind:       StringID,
		SearchFields: []string{"ticketId", "payment", "externalId", "reason"},
		SortKeys: map[string]SortKind{
			"ticketId":   SortNumber,
			"payment":    SortString,
			"externalId": SortString,
			"valid":      SortBool,
			"created_at": SortString,
		},
		DefaultSort: "created_at",
		Columns: []Column{
			{Field: "ticketId", Title: "Ticket", Sortable: true},
			{Field: "payment", Title: "Payment", Sortable: true},
			{Field: "externalId", Title: "External ID", Sortable: true},
			{Field: "valid", Title: "Valid", Sortable: true},
			{Field: "reason", Title: "Reason"},
			{Field: "created_at", Title: "Created", Sortable: true},
		},
		PageSize:   20,
		Pagination: PaginateServer,
		Aliases: withTimestamps(
			Alias{Canonical: "id", Keys: []string{"_id", "id"}, Default: ""},
			Alias{Canonical: "ticketId", Keys: []string{"ticket_id", "ticketId"}, Default: nil},
			Alias{Canonical: "payment", Keys: []string{"payment"}, Default: ""},
			Alias{Canonical: "externalId", Keys: []string{"external_id", "externalId"}, Default: ""},
			Alias{Canonical: "valid", Keys: []string{"valid"}, Default: false},
			Alias{Canonical: "reason", Keys: []string{"reason"}, Default: ""},
		),
		ForeignKeys: map[string]string{"ticketId": ResourceTickets},
		SearchLinks: map[string]string{"payment": ResourcePayments},
		Seed:        seedPingData,
	}
}

func TicketData() *Resource {
	return &Resource{
		Name:         ResourceTicketData,
		Title:        "Ticket data",
		Endpoint:     "/ticket-data",
		IDField:      "id",
		IDKind:       StringID,
		SearchFields: []string{"ticketId", "projectName", "gatewayName", "paymentName", "receiptUrl"},
		SortKeys: map[string]SortKind{
			"ticketId":       SortNumber,
			"userId":         SortNumber,
			"projectName":    SortString,
			"gatewayName":    SortString,
			"paymentName":    SortString,
			"transactionIds": SortLength,
			"created_at":     SortString,
		},
		DefaultSort: "created_at",
		Columns: []Column{
			{Field: "ticketId", Title: "Ticket", Sortable: true},
			{Field: "userId", Title: "User", Sortable: true},
			{Field: "projectName", Title: "Project", Sortable: true},
			{Field: "gatewayName", Title: "Gateway", Sortable: true},
			{Field: "paymentName", Title: "Payment", Sortable: true},
			{Field: "transactionIds", Title: "Transactions", Sortable: true},
			{Field: "created_at", Title: "Created", Sortable: true},
		},
		PageSize:   20,
		Pagination: PaginateClient,
		Aliases: withTimestamps(
			Alias{Canonical: "id", Keys: []string{"_id", "id"}, Default: ""},
			Alias{Canonical: "ticketId", Keys: []string{"ticket_id", "ticketId"}, Default: nil},
			Alias{Canonical: "ocrResultId", Keys: []string{"ocr_result_id", "ocrResultId"}, Default: ""},
			Alias{Canonical: "userId", Keys: []string{"user_id", "userId"}, Default: nil},
			Alias{Canonical: "receiptUrl", Keys: []string{"receipt_url", "receiptUrl"}, Default: ""},
			Alias{Canonical: "projectName", Keys: []string{"project_name", "projectName"}, Default: ""},
			Alias{Canonical: "gatewayName", Keys: []string{"gateway_name", "gatewayName"}, Default: ""},
			Alias{Canonical: "paymentName", Keys: []string{"payment_name", "paymentName"}, Default: ""},
			Alias{Canonical: "transactionIds", Keys: []string{"transaction_ids", "transactionIds"}, Default: []any{}},
			Alias{Canonical: "tagId", Keys: []string{"tag_id", "tagId"}, Default: ""},
			Alias{Canonical: "usage", Keys: []string{"usage"}, Default: nil},
			Alias{Canonical: "paycoreRawResponse", Keys: []string{"paycore_raw_response", "paycoreRawResponse"}, Default: nil},
			Alias{Canonical: "paymentResponse", Keys: []string{"payment_response", "paymentResponse"}, Default: nil},
		),
		ForeignKeys:  map[string]string{"ticketId": ResourceTickets, "tagId": ResourceTags},
		SearchLinks:  map[string]string{"paymentName": ResourcePayments, "gatewayName": ResourceGateways},
		JSONSections: []string{"usage", "paycoreRawResponse", "paymentResponse"},
		Seed:         seedTicketData,
	}
}

func PaymentAliases() *Resource {
	return &Resource{
		Name:         ResourcePaymentAliases,
		Title:        "Payment aliases",
		Endpoint:     "/payment-aliases",
		IDField:      "id",
		IDKind:       StringID,
		SearchFields: []string{"paymentId", "alias", "normalized", "lang"},
		SortKeys: map[string]SortKind{
			"paymentId":  SortString,
			"alias":      SortString,
			"normalized": SortString,
			"lang":       SortString,
			"weight":     SortNumber,
		},
		DefaultSort: "alias",
		Columns: []Column{
			{Field: "paymentId", Title: "Payment", Sortable: true},
			{Field: "alias", Title: "Alias", Sortable: true},
			{Field: "normalized", Title: "Normalized", Sortable: true},
			{Field: "lang", Title: "Lang", Sortable: true},
			{Field: "weight", Title: "Weight", Sortable: true},
		},
		PageSize:   20,
		Pagination: PaginateClient,
		Aliases: withTimestamps(
			Alias{Canonical: "id", Keys: []string{"_id", "id"}, Default: ""},
			Alias{Canonical: "paymentId", Keys: []string{"payment_id", "paymentId"}, Default: ""},
			Alias{Canonical: "alias", Keys: []string{"alias"}, Default: ""},
			Alias{Canonical: "normalized", Keys: []string{"normalized"}, Default: ""},
			Alias{Canonical: "lang", Keys: []string{"lang"}, Default: "en"},
			Alias{Canonical: "weight", Keys: []string{"weight"}, Default: float64(0)},
		),
		Form: []FormField{
			{Name: "paymentId", Label: "Payment ID", Kind: FieldText},
			{Name: "alias", Label: "Alias", Kind: FieldText},
			{Name: "normalized", Label: "Normalized", Kind: FieldText},
			{Name: "lang", Label: "Language", Kind: FieldSelect, Options: []string{"en", "ru"}, Default: "en"},
			{Name: "weight", Label: "Weight", Kind: FieldFloat, Default: "1"},
		},
		Required:     []string{"paymentId", "alias"},
		ForeignKeys:  map[string]string{"paymentId": ResourcePayments},
		HiddenFields: []string{"embedding"},
		Writable:     true,
		Seed:         seedPaymentAliases,
	}
}

func MessageTemplates() *Resource {
	return &Resource{
		Name:         ResourceMessageTemplates,
		Title:        "Message templates",
		Endpoint:     "/message-templates",
		IDField:      "id",
		IDKind:       StringID,
		SearchFields: []string{"type", "template"},
		SortKeys: map[string]SortKind{
			"type":         SortString,
			"template":     SortString,
			"placeholders": SortLength,
		},
		DefaultSort: "type",
		Columns: []Column{
			{Field: "type", Title: "Type", Sortable: true},
			{Field: "template", Title: "Template", Sortable: true},
			{Field: "placeholders", Title: "Placeholders", Sortable: true},
		},
		PageSize:   10,
		Pagination: PaginateClient,
		Aliases: withTimestamps(
			Alias{Canonical: "id", Keys: []string{"_id", "id"}, Default: ""},
			Alias{Canonical: "type", Keys: []string{"type"}, Default: ""},
			Alias{Canonical: "template", Keys: []string{"template"}, Default: ""},
			Alias{Canonical: "placeholders", Keys: []string{"placeholders"}, Default: []any{}},
		),
		Form: []FormField{
			{Name: "type", Label: "Type", Kind: FieldText},
			{Name: "template", Label: "Template", Kind: FieldTextarea},
			{Name: "placeholders", Label: "Placeholders (comma separated)", Kind: FieldStringList},
		},
		Required: []string{"type", "template"},
		Writable: true,
		Seed:     seedMessageTemplates,
	}
}
