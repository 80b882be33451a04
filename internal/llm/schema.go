package llm

// auditResponseFormat constrains the completion to the audit shape: exactly
// five fixed-name criteria scored 0-10, a 5-10 item checklist, and a next
// post template with a 3-8 beat script.
const auditResponseFormat = `{
  "type": "json_schema",
  "json_schema": {
    "name": "post_audit",
    "strict": true,
    "schema": {
      "type": "object",
      "additionalProperties": false,
      "required": ["overall", "criteria", "checklist", "next_post_template"],
      "properties": {
        "overall": {
          "type": "object",
          "additionalProperties": false,
          "required": ["verdict", "score_explanation", "score"],
          "properties": {
            "verdict": {"type": "string"},
            "score_explanation": {"type": "string"},
            "score": {"type": "integer", "minimum": 0, "maximum": 100}
          }
        },
        "criteria": {
          "type": "array",
          "minItems": 5,
          "maxItems": 5,
          "items": {
            "type": "object",
            "additionalProperties": false,
            "required": ["name", "score", "rationale", "examples"],
            "properties": {
              "name": {"type": "string", "enum": ["Hook", "Pacing", "Visuals", "Caption", "Retention"]},
              "score": {"type": "number", "minimum": 0, "maximum": 10},
              "rationale": {"type": "string"},
              "examples": {"type": "array", "minItems": 0, "maxItems": 5, "items": {"type": "string"}}
            }
          }
        },
        "checklist": {
          "type": "array",
          "minItems": 5,
          "maxItems": 10,
          "items": {
            "type": "object",
            "additionalProperties": false,
            "required": ["item", "done"],
            "properties": {
              "item": {"type": "string"},
              "done": {"type": "boolean"}
            }
          }
        },
        "next_post_template": {
          "type": "object",
          "additionalProperties": false,
          "required": ["title", "script"],
          "properties": {
            "title": {"type": "string"},
            "script": {"type": "array", "minItems": 3, "maxItems": 8, "items": {"type": "string"}}
          }
        }
      }
    }
  }
}`
