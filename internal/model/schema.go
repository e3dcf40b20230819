package model

// contentSchema constrains the resume content blob at write time. The
// renderer still coerces malformed shapes defensively, but persisted
// content should never need it.
const contentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "jobTitle": {"type": "string"},
    "profilePicture": {"type": "string"},
    "personalInfo": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "city": {"type": "string"},
        "state": {"type": "string"},
        "summary": {"type": "string"},
        "website": {"type": "string"},
        "linkedin": {"type": "string"},
        "github": {"type": "string"}
      },
      "additionalProperties": true
    },
    "strengths": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["skillName", "rating"],
        "properties": {
          "skillName": {"type": "string"},
          "rating": {"type": "integer", "minimum": 0, "maximum": 10}
        }
      }
    },
    "workExperience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["company", "position"],
        "properties": {
          "company": {"type": "string"},
          "position": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": ["string", "null"]},
          "current": {"type": "boolean"},
          "bulletPoints": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {"description": {"type": "string"}}
            }
          }
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["school"],
        "properties": {
          "school": {"type": "string"},
          "degree": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": ["string", "null"]},
          "current": {"type": "boolean"},
          "gpa": {"type": ["number", "null"]}
        }
      }
    },
    "courses": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {"type": "string"},
          "provider": {"type": "string"},
          "link": {"type": "string"}
        }
      }
    },
    "interests": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "icon": {"type": "string"}
        }
      }
    }
  },
  "additionalProperties": true
}`
