// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package feeds

import (
	"time"

	"github.com/Ventmere/mws-go/decode"
	"github.com/Ventmere/mws-go/encode"
	"mellium.im/xmlstream"
)

// FeedSubmissionInfo describes a submitted feed and its processing state.
type FeedSubmissionInfo struct {
	FeedSubmissionID        string               `json:"feed_submission_id"`
	FeedType                FeedType             `json:"feed_type"`
	SubmittedDate           *time.Time           `json:"submitted_date,omitempty"`
	FeedProcessingStatus    FeedProcessingStatus `json:"feed_processing_status"`
	StartedProcessingDate   *time.Time           `json:"started_processing_date,omitempty"`
	CompletedProcessingDate *time.Time           `json:"completed_processing_date,omitempty"`
}

// WriteXML satisfies the xmlstream.WriterTo interface.
func (i *FeedSubmissionInfo) WriteXML(w xmlstream.TokenWriter) (int, error) {
	return encode.Nodes{
		encode.Elem("FeedSubmissionId").Text(i.FeedSubmissionID),
		encode.Elem("FeedType").Text(string(i.FeedType)),
		encode.OptionalTime("SubmittedDate", i.SubmittedDate),
		encode.Elem("FeedProcessingStatus").Text(string(i.FeedProcessingStatus)),
		encode.OptionalTime("StartedProcessingDate", i.StartedProcessingDate),
		encode.OptionalTime("CompletedProcessingDate", i.CompletedProcessingDate),
	}.WriteXML(w)
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (i *FeedSubmissionInfo) UnmarshalXMLStream(c *decode.Cursor) error {
	return submissionInfoTable.Fold(c, i)
}

var submissionInfoTable = decode.Table[FeedSubmissionInfo]{
	"FeedSubmissionId": func(c *decode.Cursor, i *FeedSubmissionInfo) (err error) {
		i.FeedSubmissionID, err = decode.Characters(c)
		return err
	},
	"FeedType": func(c *decode.Cursor, i *FeedSubmissionInfo) error {
		s, err := decode.Characters(c)
		i.FeedType = FeedType(s)
		return err
	},
	"SubmittedDate": func(c *decode.Cursor, i *FeedSubmissionInfo) (err error) {
		i.SubmittedDate, err = decode.Some(decode.Time(c))
		return err
	},
	"FeedProcessingStatus": func(c *decode.Cursor, i *FeedSubmissionInfo) error {
		s, err := decode.Characters(c)
		i.FeedProcessingStatus = FeedProcessingStatus(s)
		return err
	},
	"StartedProcessingDate": func(c *decode.Cursor, i *FeedSubmissionInfo) (err error) {
		i.StartedProcessingDate, err = decode.Some(decode.Time(c))
		return err
	},
	"CompletedProcessingDate": func(c *decode.Cursor, i *FeedSubmissionInfo) (err error) {
		i.CompletedProcessingDate, err = decode.Some(decode.Time(c))
		return err
	},
}

func requestID(c *decode.Cursor) (string, error) {
	return decode.Element(c, decode.Names{"RequestId"}, decode.Characters)
}

// SubmitFeedResponse is the response to a SubmitFeed request.
type SubmitFeedResponse struct {
	RequestID string `json:"request_id"`
	FeedSubmissionInfo
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
// The submission info is accepted both directly below the root and inside a
// SubmitFeedResult element.
func (r *SubmitFeedResponse) UnmarshalXMLStream(c *decode.Cursor) error {
	_, err := decode.FoldElements(c, r, func(c *decode.Cursor, r **SubmitFeedResponse) error {
		var err error
		switch c.LocalName() {
		case "SubmitFeedResult":
			err = (*r).UnmarshalXMLStream(c)
		case "FeedSubmissionInfo":
			err = (*r).FeedSubmissionInfo.UnmarshalXMLStream(c)
		case "ResponseMetadata":
			(*r).RequestID, err = requestID(c)
		}
		return err
	})
	return err
}

// SubmitFeedResponseNames are the accepted root elements of a SubmitFeed
// response.
var SubmitFeedResponseNames = decode.Names{"SubmitFeedResponse"}

// DecodeSubmitFeedResponse reads a SubmitFeed response document.
func DecodeSubmitFeedResponse(c *decode.Cursor) (SubmitFeedResponse, error) {
	return decode.Decode[SubmitFeedResponse](c, SubmitFeedResponseNames)
}

// GetFeedSubmissionListResponse is the response to a GetFeedSubmissionList or
// GetFeedSubmissionListByNextToken request.
type GetFeedSubmissionListResponse struct {
	RequestID          string               `json:"request_id"`
	NextToken          *string              `json:"next_token,omitempty"`
	HasNext            bool                 `json:"has_next"`
	FeedSubmissionInfo []FeedSubmissionInfo `json:"feed_submission_info"`
}

// UnmarshalXMLStream satisfies the decode.Unmarshaler interface.
func (r *GetFeedSubmissionListResponse) UnmarshalXMLStream(c *decode.Cursor) error {
	_, err := decode.FoldElements(c, r, func(c *decode.Cursor, r **GetFeedSubmissionListResponse) error {
		var err error
		switch c.LocalName() {
		case "GetFeedSubmissionListResult", "GetFeedSubmissionListByNextTokenResult":
			err = submissionListTable.Fold(c, *r)
		case "ResponseMetadata":
			(*r).RequestID, err = requestID(c)
		}
		return err
	})
	return err
}

var submissionListTable = decode.Table[GetFeedSubmissionListResponse]{
	"NextToken": func(c *decode.Cursor, r *GetFeedSubmissionListResponse) (err error) {
		r.NextToken, err = decode.Some(decode.Characters(c))
		return err
	},
	"HasNext": func(c *decode.Cursor, r *GetFeedSubmissionListResponse) (err error) {
		r.HasNext, err = decode.Bool(c)
		return err
	},
	"FeedSubmissionInfo": func(c *decode.Cursor, r *GetFeedSubmissionListResponse) error {
		info, err := decode.Record[FeedSubmissionInfo](c)
		if err != nil {
			return err
		}
		r.FeedSubmissionInfo = append(r.FeedSubmissionInfo, info)
		return nil
	},
}

// GetFeedSubmissionListResponseNames are the accepted root elements of a
// GetFeedSubmissionList response.
var GetFeedSubmissionListResponseNames = decode.Names{
	"GetFeedSubmissionListResponse",
	"GetFeedSubmissionListByNextTokenResponse",
}

// DecodeGetFeedSubmissionListResponse reads a GetFeedSubmissionList or
// GetFeedSubmissionListByNextToken response document.
func DecodeGetFeedSubmissionListResponse(c *decode.Cursor) (GetFeedSubmissionListResponse, error) {
	return decode.Decode[GetFeedSubmissionListResponse](c, GetFeedSubmissionListResponseNames)
}
