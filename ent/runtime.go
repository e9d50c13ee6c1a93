// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/hector-oviedo/open-research/ent/researchsession"
	"github.com/hector-oviedo/open-research/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	researchsessionFields := schema.ResearchSession{}.Fields()
	_ = researchsessionFields
	// researchsessionDescIsStopped is the schema descriptor for is_stopped field.
	researchsessionDescIsStopped := researchsessionFields[3].Descriptor()
	// researchsession.DefaultIsStopped holds the default value on creation for the is_stopped field.
	researchsession.DefaultIsStopped = researchsessionDescIsStopped.Default.(bool)
	// researchsessionDescEventsCount is the schema descriptor for events_count field.
	researchsessionDescEventsCount := researchsessionFields[6].Descriptor()
	// researchsession.DefaultEventsCount holds the default value on creation for the events_count field.
	researchsession.DefaultEventsCount = researchsessionDescEventsCount.Default.(int)
}
