// Package records defines the Student and Account entities and their
// delimited plain-text line format.
//
// # Line Format
//
// Fields are separated by FieldDelimiter ('|'). Field order is part of the
// format:
//
//	Student: id|name|g1,g2,...,gn
//	Account: username|password|role|studentId
//
// Grades are joined with GradeSeparator (','); an empty grade list leaves
// the third field empty. An Account line may omit the fourth field
// entirely, which decodes to an unset StudentRef whose ID is 0.
//
// # Constraints
//
// No field may contain the field delimiter, and names may not contain the
// grade separator inside the grade field. The codecs do not check this on
// Serialize; a record that breaks the rule fails to decode later with a
// *errors.FormatError. Input validation belongs to the callers.
package records
