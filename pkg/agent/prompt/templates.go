package prompt

import "github.com/cityworks/cityagent/pkg/models"

// departmentFocus anchors each agent's prompts in its domain.
var departmentFocus = map[models.Department]string{
	models.DepartmentWater:       "Your domain: water supply, pipelines, shift scheduling, and maintenance windows.",
	models.DepartmentEngineering: "Your domain: civil projects, infrastructure condition, and capital planning.",
	models.DepartmentFire:        "Your domain: fire response, safety inspections, and crew readiness.",
	models.DepartmentSanitation:  "Your domain: waste collection routes and disposal-site capacity.",
	models.DepartmentHealth:      "Your domain: sanitary inspections, outbreak surveillance, and response teams.",
	models.DepartmentFinance:     "Your domain: budget allocations, fund transfers, and fiscal-calendar constraints.",
}

const intentTask = `Classify the request into a domain intent and grade its risk.
Return {"intent": string, "risk_level": "low"|"medium"|"high"|"critical"}.
Grade "critical" only for situations endangering life or essential services right now.`

const goalTask = `State a single-sentence objective for handling this request, plus success criteria.
Return {"goal": string, "success_criteria": [string]}.`

const plannerTask = `Produce an ordered plan of tool calls to gather the facts this decision needs.
Every step's tool must come from the available tools list.
Return {"steps": [{"tool": string, "arguments": object}], "constraints": [string],
"expected_duration_minutes": number, "estimated_cost": number, "summary": string}.`

const observerTask = `Normalize the tool results into flat typed observations.
Return {"values": {string: bool|number|string}, "data_completeness": number}.
data_completeness is the fraction of expected facts that are present, between 0 and 1.`

const policyTask = `Phrase each policy violation below as one clear sentence a department head
would act on. Do not add or remove violations.
Return {"violations": [string]}.`

const confidenceTask = `Estimate confidence in proceeding with this plan.
Return {"confidence": number} with confidence between 0 and 1.`
