package domain

// Статические наборы записей для ресурсов без бэкенда и для офлайн-режима.
// Каждая функция возвращает новые значения, вызывающий может их менять.

func seedChats() []Record {
	return []Record{
		{"id": float64(1), "payment": "hgate_card", "chatId": "-1001934570011", "operators": Ints(101, 102), "template": "with_file", "created_at": "2024-03-01 10:00:00", "updated_at": "2024-03-01 10:00:00"},
		{"id": float64(2), "payment": "paycore", "chatId": "-1001934570012", "operators": Ints(103), "template": "with_url", "created_at": "2024-03-02 11:30:00", "updated_at": "2024-03-02 11:30:00"},
		{"id": float64(3), "payment": "HGATE_sbp", "chatId": "-1001934570013", "operators": Ints(101, 104, 105), "template": "with_file", "created_at": "2024-03-03 09:15:00", "updated_at": "2024-03-05 16:40:00"},
		{"id": float64(4), "payment": "monetix", "chatId": "-1001934570014", "operators": Ints(), "template": "with_url", "created_at": "2024-03-04 08:00:00", "updated_at": "2024-03-04 08:00:00"},
		{"id": float64(5), "payment": "hgate_p2p", "chatId": "-1001934570015", "operators": Ints(102), "template": "with_url", "created_at": "2024-03-05 12:45:00", "updated_at": "2024-03-05 12:45:00"},
		{"id": float64(6), "payment": "payok", "chatId": "-1001934570016", "operators": Ints(106, 107), "template": "with_file", "created_at": "2024-03-06 14:20:00", "updated_at": "2024-03-06 14:20:00"},
		{"id": float64(7), "payment": "cryptocloud", "chatId": "-1001934570017", "operators": Ints(108), "template": "with_file", "created_at": "2024-03-07 17:05:00", "updated_at": "2024-03-07 17:05:00"},
		{"id": float64(8), "payment": "alfa_hgate", "chatId": "-1001934570018", "operators": Ints(101, 109), "template": "with_url", "created_at": "2024-03-08 07:50:00", "updated_at": "2024-03-08 07:50:00"},
		{"id": float64(9), "payment": "tinkoff", "chatId": "-1001934570019", "operators": Ints(110), "template": "with_file", "created_at": "2024-03-09 19:10:00", "updated_at": "2024-03-09 19:10:00"},
	}
}

func seedPayments() []Record {
	return []Record{
		{
			"id": "65f1a0c2e4b0a1b2c3d4e501", "name": "hgate_card",
			FieldTagIDs: Strings("65f1a0c2e4b0a1b2c3d4e601"), FieldGatewayIDs: Strings("65f1a0c2e4b0a1b2c3d4e701"),
			FieldTagsDetail:     []any{map[string]any{"id": "65f1a0c2e4b0a1b2c3d4e601", "name": "card_deposit"}},
			FieldGatewaysDetail: []any{map[string]any{"id": "65f1a0c2e4b0a1b2c3d4e701", "name": "hgate-eu"}},
			"currency":          "EUR", "created_at": "2024-02-01 10:00:00", "updated_at": "2024-02-10 10:00:00",
		},
		{
			"id": "65f1a0c2e4b0a1b2c3d4e502", "name": "paycore",
			FieldTagIDs: Strings("65f1a0c2e4b0a1b2c3d4e602"), FieldGatewayIDs: Strings(),
			FieldTagsDetail:     []any{map[string]any{"id": "65f1a0c2e4b0a1b2c3d4e602", "name": "sbp_withdrawal"}},
			FieldGatewaysDetail: []any{},
			"currency":          "RUB", "created_at": "2024-02-02 10:00:00", "updated_at": "2024-02-02 10:00:00",
		},
		{
			"id": "65f1a0c2e4b0a1b2c3d4e503", "name": "monetix",
			FieldTagIDs: Strings(), FieldGatewayIDs: Strings("65f1a0c2e4b0a1b2c3d4e702"),
			FieldTagsDetail:     []any{},
			FieldGatewaysDetail: []any{map[string]any{"id": "65f1a0c2e4b0a1b2c3d4e702", "name": "monetix-main"}},
			"currency":          "USD", "created_at": "2024-02-03 10:00:00", "updated_at": "2024-02-03 10:00:00",
		},
	}
}

func seedGateways() []Record {
	return []Record{
		{"id": "65f1a0c2e4b0a1b2c3d4e701", "name": "hgate-eu", "payment": "65f1a0c2e4b0a1b2c3d4e501", "tag": "65f1a0c2e4b0a1b2c3d4e601", "created_at": "2024-02-05 09:00:00", "updated_at": "2024-02-05 09:00:00"},
		{"id": "65f1a0c2e4b0a1b2c3d4e702", "name": "monetix-main", "payment": "65f1a0c2e4b0a1b2c3d4e503", "tag": "", "created_at": "2024-02-06 09:00:00", "updated_at": "2024-02-06 09:00:00"},
	}
}

func seedTags() []Record {
	return []Record{
		{"id": "65f1a0c2e4b0a1b2c3d4e601", "uuid": "7d9f0c1e-2b1a-4c55-9e77-0a1b2c3d4e01", "name": "card_deposit", "paymentId": "65f1a0c2e4b0a1b2c3d4e501", "excludeInProcess": false, "gateways": Strings("65f1a0c2e4b0a1b2c3d4e701"), "created_at": "2024-02-04 12:00:00", "updated_at": "2024-02-04 12:00:00"},
		{"id": "65f1a0c2e4b0a1b2c3d4e602", "uuid": "7d9f0c1e-2b1a-4c55-9e77-0a1b2c3d4e02", "name": "sbp_withdrawal", "paymentId": "65f1a0c2e4b0a1b2c3d4e502", "excludeInProcess": true, "gateways": Strings(), "created_at": "2024-02-04 12:30:00", "updated_at": "2024-02-04 12:30:00"},
	}
}

func seedTickets() []Record {
	return []Record{
		{"id": float64(48210), "uuid": "c1a2b3c4-0000-4000-8000-000000048210", "status": "open", "subject": "Deposit not credited", "team": "payments", "agent": "m.ivanova", "priority": "high", "created_at": "2024-03-10 08:12:00", "updated_at": "2024-03-10 09:00:00"},
		{"id": float64(48211), "uuid": "c1a2b3c4-0000-4000-8000-000000048211", "status": "pending", "subject": "", "team": nil, "agent": nil, "priority": nil, "created_at": "2024-03-10 08:40:00", "updated_at": "2024-03-10 08:40:00"},
		{"id": float64(48212), "uuid": "c1a2b3c4-0000-4000-8000-000000048212", "status": "solved", "subject": "Withdrawal delayed", "team": "payments", "agent": "a.petrov", "priority": "normal", "created_at": "2024-03-11 13:05:00", "updated_at": "2024-03-12 10:00:00"},
	}
}

func seedPingData() []Record {
	return []Record{
		{"id": "66a0b1c2d3e4f50617283901", "ticketId": float64(48210), "payment": "hgate_card", "externalId": "HG-99120", "valid": true, "reason": "", "created_at": "2024-03-10 08:13:00", "updated_at": "2024-03-10 08:13:00"},
		{"id": "66a0b1c2d3e4f50617283902", "ticketId": float64(48212), "payment": "paycore", "externalId": "PC-10021", "valid": false, "reason": "amount mismatch", "created_at": "2024-03-11 13:06:00", "updated_at": "2024-03-11 13:06:00"},
	}
}

func seedTicketData() []Record {
	return []Record{
		{
			"id": "66b0c1d2e3f4051627384901", "ticketId": float64(48210), "ocrResultId": "ocr-5521", "userId": float64(700123),
			"receiptUrl": "https://files.example.com/receipts/48210.png", "projectName": "casino-eu", "gatewayName": "hgate-eu", "paymentName": "hgate_card",
			"transactionIds": Ints(9001, 9002), "tagId": "65f1a0c2e4b0a1b2c3d4e601",
			"usage":              map[string]any{"prompt_tokens": float64(812), "completion_tokens": float64(64), "total_tokens": float64(876)},
			"paycoreRawResponse": nil,
			"paymentResponse":    map[string]any{"status": "success", "amount": float64(150)},
			"created_at":         "2024-03-10 08:14:00", "updated_at": "2024-03-10 08:14:00",
		},
	}
}

func seedPaymentAliases() []Record {
	return []Record{
		{"id": "66c0d1e2f3a4b5c6d7e8f901", "paymentId": "65f1a0c2e4b0a1b2c3d4e501", "alias": "HGate Card", "normalized": "hgate card", "lang": "en", "weight": 1.0, "embedding": nil, "created_at": "2024-02-20 10:00:00", "updated_at": "2024-02-20 10:00:00"},
		{"id": "66c0d1e2f3a4b5c6d7e8f902", "paymentId": "65f1a0c2e4b0a1b2c3d4e502", "alias": "Пэйкор", "normalized": "пэйкор", "lang": "ru", "weight": 0.8, "embedding": nil, "created_at": "2024-02-20 10:05:00", "updated_at": "2024-02-20 10:05:00"},
	}
}

func seedMessageTemplates() []Record {
	return []Record{
		{"id": "66d0e1f2a3b4c5d6e7f80901", "type": "deposit_found", "template": "Hello {name}, total {amount}", "placeholders": Strings("amount", "name"), "created_at": "2024-01-15 10:00:00", "updated_at": "2024-01-15 10:00:00"},
		{"id": "66d0e1f2a3b4c5d6e7f80902", "type": "deposit_missing", "template": "We could not find payment {external_id} for {name}", "placeholders": Strings("external_id"), "created_at": "2024-01-15 10:10:00", "updated_at": "2024-01-15 10:10:00"},
	}
}
