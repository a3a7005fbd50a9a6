package mcpserver

const recordFormatURI = "noteful://record-format"

// RecordFormat describes the folder and note records that LLM consumers read
// and create through the tools.
const RecordFormat = `# Noteful Record Format

## Folder

| field         | type    | notes                          |
|---------------|---------|--------------------------------|
| id            | integer | assigned by the store          |
| folder_name   | string  | required on create             |

## Note

| field         | type     | notes                                   |
|---------------|----------|-----------------------------------------|
| id            | integer  | assigned by the store                   |
| note_title    | string   | required on create                      |
| content       | string   | required on create, may be empty        |
| folder_id     | integer  | required on create, folder must exist   |
| date_modified | datetime | set by the store on create and update   |

## Rules

1. A required field must be present; an empty string counts as present.
2. Unknown fields are ignored.
3. Output is escaped. ` + "`<` and `>`" + ` in folder names and note titles
   come back as ` + "`&lt;` and `&gt;`" + `. Note content keeps simple inline
   tags such as ` + "`<strong>`, `<em>`, `<a href>`, `<img src>`" + ` but loses
   event handler attributes, scripts and ` + "`javascript:`" + ` URLs.
4. Deleting a folder deletes its notes.
`
