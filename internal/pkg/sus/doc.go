// Package sus turns slider answers of the System Usability Scale questionnaire into FHIR
// QuestionnaireResponse documents and computes the 0-100 usability score.
//
// Everything in this package is a pure function of its inputs. Callers own the AnswerMap and
// replace it on every change, so each call works on a consistent snapshot.
package sus
