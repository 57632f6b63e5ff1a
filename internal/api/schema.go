package api

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const matchRequestSchema = `{
  "type": "object",
  "properties": {
    "selections": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "priorities": {
      "type": "object",
      "properties": {
        "safety": {"type": "number", "minimum": 0, "maximum": 10},
        "performance": {"type": "number", "minimum": 0, "maximum": 10},
        "cargo": {"type": "number", "minimum": 0, "maximum": 10}
      },
      "additionalProperties": false
    },
    "budget": {"type": "number", "minimum": 0},
    "limit": {"type": "integer", "minimum": 0, "maximum": 50}
  },
  "additionalProperties": false
}`

const financeRequestSchema = `{
  "type": "object",
  "properties": {
    "car_id": {"type": "string", "minLength": 1},
    "price": {"type": "number", "minimum": 1},
    "finance": {
      "type": "object",
      "properties": {
        "term_months": {"type": "integer", "minimum": 1},
        "interest_rate": {"type": "number", "minimum": 0, "maximum": 100},
        "down_payment": {"type": "number", "minimum": 0, "maximum": 100},
        "trade_in_value": {"type": "number", "minimum": 0}
      },
      "required": ["term_months", "interest_rate", "down_payment"],
      "additionalProperties": false
    },
    "lease": {
      "type": "object",
      "properties": {
        "term_months": {"type": "integer", "minimum": 1},
        "money_factor": {"type": "number", "minimum": 0},
        "down_payment": {"type": "number", "minimum": 0, "maximum": 100},
        "residual_value": {"type": "number", "minimum": 0, "maximum": 100},
        "mileage_limit": {"type": "integer", "minimum": 0},
        "trade_in_value": {"type": "number", "minimum": 0}
      },
      "required": ["term_months", "money_factor", "residual_value"],
      "additionalProperties": false
    },
    "used": {
      "type": "object",
      "properties": {
        "price": {"type": "number", "minimum": 1},
        "year": {"type": "integer"},
        "mileage": {"type": "integer", "minimum": 0},
        "condition": {"enum": ["excellent", "good", "fair"]},
        "financing": {
          "type": "object",
          "properties": {
            "term_months": {"type": "integer", "minimum": 1},
            "interest_rate": {"type": "number", "minimum": 0, "maximum": 100},
            "down_payment": {"type": "number", "minimum": 0, "maximum": 100}
          },
          "required": ["term_months", "interest_rate", "down_payment"],
          "additionalProperties": false
        }
      },
      "required": ["price"],
      "additionalProperties": false
    }
  },
  "additionalProperties": false,
  "anyOf": [
    {"required": ["car_id"]},
    {"required": ["price"]}
  ]
}`

const reviewRequestSchema = `{
  "type": "object",
  "properties": {
    "car_id": {"type": "string", "minLength": 1},
    "user_id": {"type": "string"},
    "user_name": {"type": "string"},
    "rating": {"type": "integer"},
    "title": {"type": "string", "minLength": 1},
    "comment": {"type": "string", "minLength": 1},
    "verified": {"type": "boolean"}
  },
  "required": ["car_id", "rating", "title", "comment"]
}`

type schemas struct {
	match   *gojsonschema.Schema
	finance *gojsonschema.Schema
	review  *gojsonschema.Schema
}

func compileSchemas() (*schemas, error) {
	var s schemas
	for _, c := range []struct {
		name string
		src  string
		dst  **gojsonschema.Schema
	}{
		{"match", matchRequestSchema, &s.match},
		{"finance", financeRequestSchema, &s.finance},
		{"review", reviewRequestSchema, &s.review},
	} {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(c.src))
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", c.name, err)
		}
		*c.dst = schema
	}
	return &s, nil
}

func mustCompileSchemas() *schemas {
	s, err := compileSchemas()
	if err != nil {
		panic(err)
	}
	return s
}
