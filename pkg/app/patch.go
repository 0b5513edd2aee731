package app

import "tableflip.dev/routine/pkg/activity"

// Patch is a partial edit; nil fields keep their current value.
type Patch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	CategoryID  *string `json:"categoryId,omitempty"`
}

// PatchFromForm sets every field of a patch from a complete form.
func PatchFromForm(v activity.FormValues) Patch {
	return Patch{
		Title:       &v.Title,
		Description: &v.Description,
		Date:        &v.Date,
		Time:        &v.Time,
		CategoryID:  &v.CategoryID,
	}
}

// Empty reports whether p changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Date == nil && p.Time == nil && p.CategoryID == nil
}

// Merge overlays p on the current values of a.
func (p Patch) Merge(a activity.Activity) activity.FormValues {
	v := a.Form()
	if p.Title != nil {
		v.Title = *p.Title
	}
	if p.Description != nil {
		v.Description = *p.Description
	}
	if p.Date != nil {
		v.Date = *p.Date
	}
	if p.Time != nil {
		v.Time = *p.Time
	}
	if p.CategoryID != nil {
		v.CategoryID = *p.CategoryID
	}
	return v
}

// String returns a pointer to s, for building patches.
func String(s string) *string {
	return &s
}
