package catalog

// SOCV1 and SOCV2 are the names of the two built-in catalog variants.
// Variant selection is an explicit configuration choice; there is no
// runtime fallback from one to the other.
const (
	SOCV1 = "soc-v1"
	SOCV2 = "soc-v2"
)

// Default returns the soc-v1 catalog: one model call per field, JSON-array
// prompts for the multi-valued fields. "Return null if none" is a contract
// with the model; the normalizer's null detection is the only enforcement.
func Default() Catalog {
	return Catalog{
		Name: SOCV1,
		Fields: []Field{
			{"ThirdPartyServiceProvider", "Return the third-party service provider name as a string. Return only the name. If not found, return null. Do not explain.", Scalar},
			{"SOC1ReportType", "Return 'Type 1' or 'Type 2' as a string. Return only the type. If not found, return null. Do not explain.", Scalar},
			{"ServiceAuditor", "Return the service auditor firm name as a string. If not found, return null. No extra text.", Scalar},
			{"AuditorOpinionDate", "Return the auditor opinion date in YYYY-MM-DD format. Return only the date. If not found, return null.", Scalar},
			{"AuditorOpinionType", "Return only the opinion type (e.g. 'unqualified', 'qualified'). If not found, return null. Do not include reasoning.", Scalar},
			{"ReportPeriod", "Return the report period in the format 'YYYY-MM-DD to YYYY-MM-DD'. If not found, return null.", Scalar},
			{"ServicesProvided", "Return a JSON array of services provided. If not found, return null.", StructuredList},
			{"ReportsInScope", "Return a JSON array of reports included in scope. If none, return null.", StructuredList},
			{"ReportsOutOfScope", "Return a JSON array of excluded reports. If none, return null.", StructuredList},
			{"ControlObjective", "Return a JSON array of control objectives. If none found, return null.", StructuredList},
			{"ControlExceptionIdentified", "Return a JSON array like [{\"control\": \"CO1\", \"exception_found\": \"No\"}]. If none, return null.", StructuredList},
			{"ControlNumber", "Return a JSON array of control numbers. If not found, return null.", StructuredList},
			{"ControlDescription", "Return a JSON array of control descriptions: [{\"number\": \"CO1.1\", \"description\": \"...\"}]. If none, return null.", StructuredList},
			{"CUECNumber", "Return a JSON array of CUEC numbers. If none, return null.", StructuredList},
			{"CUECDescription", "Return a JSON array of CUEC details like [{\"number\": \"CUEC-1\", \"description\": \"...\"}]. If none, return null.", StructuredList},
			{"SubserviceProvider", "Return a JSON array of subservice providers. Return names only. If none, return null.", StructuredList},
		},
	}
}

// Bulleted returns the soc-v2 catalog. The name-only multi-valued fields ask
// for plain bulleted lists instead of JSON arrays, which survive weaker
// models better; fields that carry per-item structure stay JSON.
func Bulleted() Catalog {
	return Catalog{
		Name: SOCV2,
		Fields: []Field{
			{"ThirdPartyServiceProvider", "Return the third-party service provider name as a string. Return only the name. If not found, return null. Do not explain.", Scalar},
			{"SOC1ReportType", "Return 'Type 1' or 'Type 2' as a string. Return only the type. If not found, return null. Do not explain.", Scalar},
			{"ServiceAuditor", "Return the service auditor firm name as a string. If not found, return null. No extra text.", Scalar},
			{"AuditorOpinionDate", "Return the auditor opinion date in YYYY-MM-DD format. Return only the date. If not found, return null.", Scalar},
			{"AuditorOpinionType", "Return only the opinion type (e.g. 'unqualified', 'qualified'). If not found, return null. Do not include reasoning.", Scalar},
			{"ReportPeriod", "Return the report period in the format 'YYYY-MM-DD to YYYY-MM-DD'. If not found, return null.", Scalar},
			{"ServicesProvided", "List the services provided, one per line prefixed with '-'. Names only. If none, return null.", FlatList},
			{"ReportsInScope", "List the reports included in scope, one per line prefixed with '-'. If none, return null.", FlatList},
			{"ReportsOutOfScope", "List the excluded reports, one per line prefixed with '-'. If none, return null.", FlatList},
			{"ControlObjective", "List the control objectives, one per line prefixed with '-'. If none, return null.", FlatList},
			{"ControlExceptionIdentified", "Return a JSON array like [{\"control\": \"CO1\", \"exception_found\": \"No\"}]. If none, return null.", StructuredList},
			{"ControlNumber", "List the control numbers, one per line prefixed with '-'. If none, return null.", FlatList},
			{"ControlDescription", "Return a JSON array of control descriptions: [{\"number\": \"CO1.1\", \"description\": \"...\"}]. If none, return null.", StructuredList},
			{"CUECNumber", "List the CUEC numbers, one per line prefixed with '-'. If none, return null.", FlatList},
			{"CUECDescription", "Return a JSON array of CUEC details like [{\"number\": \"CUEC-1\", \"description\": \"...\"}]. If none, return null.", StructuredList},
			{"SubserviceProvider", "List the subservice providers, one per line prefixed with '-'. Names only. If none, return null.", FlatList},
		},
	}
}
