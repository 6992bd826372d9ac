package store

// relationFields lists, per kind, the payload fields that carry embedded
// related records. Clients send entities with their relations nested inline;
// writing those through to the owning row would corrupt foreign-key state,
// so they are stripped before the upsert. Contract paymentSchedule is also
// listed here: it is extracted (not discarded) and replayed as a child
// replacement by the transform step.
var relationFields = map[Kind][]string{
	KindProperty: {"units", "documents"},
	KindUnit:     {"appliances"},
	KindContract: {"paymentSchedule", "documents", "transactions", "category"},
	KindOwner:    {"properties", "reminders", "payoutVouchers", "user"},
	KindTenant:   {"documents", "contracts"},
	KindWallet:   {"user"},
	KindExpense:  {"property", "unit"},
	KindUser:     {"wallet", "owner", "tenant"},
}

// genericRelations covers kinds with no dedicated list; these field names
// show up in miscellaneous payloads and are never scalar columns.
var genericRelations = []string{"user", "property", "unit", "documents"}

// Sanitize returns a copy of item holding only persistable scalar fields,
// plus the removed relation values keyed by field name. For tenants the
// UI-facing "tenantId" field is renamed to the persisted "tenantIdNo"
// column rather than dropped.
func Sanitize(kind Kind, item map[string]interface{}) (map[string]interface{}, map[string]interface{}) {
	rec := make(map[string]interface{}, len(item))
	for k, v := range item {
		rec[k] = v
	}

	fields, ok := relationFields[kind]
	if !ok {
		fields = genericRelations
	}

	rels := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		if v, present := rec[f]; present {
			rels[f] = v
			delete(rec, f)
		}
	}

	if kind == KindTenant {
		if v, present := rec["tenantId"]; present {
			rec["tenantIdNo"] = v
			delete(rec, "tenantId")
		}
	}

	return rec, rels
}
