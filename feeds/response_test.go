// Copyright 2026 The Mellium Contributors.
// Use of this source code is governed by the BSD 2-clause
// license that can be found in the LICENSE file.

package feeds_test

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/Ventmere/mws-go/decode"
	"github.com/Ventmere/mws-go/feeds"
	"github.com/Ventmere/mws-go/internal/xmltest"
)

func date(year int, month time.Month, day, hour, min, sec int) *time.Time {
	t := time.Date(year, month, day, hour, min, sec, 0, time.UTC)
	return &t
}

func strPtr(s string) *string {
	return &s
}

const submitFeedResponse = `<?xml version="1.0"?>
<SubmitFeedResponse xmlns="http://mws.amazonaws.com/doc/2009-01-01/">
  <SubmitFeedResult>
    <FeedSubmissionInfo>
      <FeedSubmissionId>2291326430</FeedSubmissionId>
      <FeedType>_POST_PRODUCT_DATA_</FeedType>
      <SubmittedDate>2009-02-20T02:10:35+00:00</SubmittedDate>
      <FeedProcessingStatus>_SUBMITTED_</FeedProcessingStatus>
    </FeedSubmissionInfo>
  </SubmitFeedResult>
  <ResponseMetadata>
    <RequestId>75424a51-9f9e-4a86-a9a6-5e8a6e7f1c3c</RequestId>
  </ResponseMetadata>
</SubmitFeedResponse>`

func TestDecodeSubmitFeedResponse(t *testing.T) {
	r, err := feeds.DecodeSubmitFeedResponse(decode.NewReader(strings.NewReader(submitFeedResponse)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := feeds.SubmitFeedResponse{
		RequestID: "75424a51-9f9e-4a86-a9a6-5e8a6e7f1c3c",
		FeedSubmissionInfo: feeds.FeedSubmissionInfo{
			FeedSubmissionID:     "2291326430",
			FeedType:             feeds.FeedProduct,
			SubmittedDate:        date(2009, time.February, 20, 2, 10, 35),
			FeedProcessingStatus: feeds.StatusSubmitted,
		},
	}
	if !reflect.DeepEqual(r, want) {
		t.Errorf("unexpected response:\nwant=%+v,\n got=%+v", want, r)
	}
}

func TestDecodeSubmitFeedResponseFlat(t *testing.T) {
	const doc = `<SubmitFeedResponse>
  <FeedSubmissionInfo>
    <FeedSubmissionId>2291326430</FeedSubmissionId>
    <FeedType>_POST_INVENTORY_AVAILABILITY_DATA_</FeedType>
    <SubmittedDate>2009-02-20T02:10:35+00:00</SubmittedDate>
    <FeedProcessingStatus>_SUBMITTED_</FeedProcessingStatus>
  </FeedSubmissionInfo>
  <ResponseMetadata><RequestId>abc</RequestId></ResponseMetadata>
</SubmitFeedResponse>`
	r, err := feeds.DecodeSubmitFeedResponse(decode.NewReader(strings.NewReader(doc)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := feeds.SubmitFeedResponse{
		RequestID: "abc",
		FeedSubmissionInfo: feeds.FeedSubmissionInfo{
			FeedSubmissionID:     "2291326430",
			FeedType:             feeds.FeedInventory,
			SubmittedDate:        date(2009, time.February, 20, 2, 10, 35),
			FeedProcessingStatus: feeds.StatusSubmitted,
		},
	}
	if !reflect.DeepEqual(r, want) {
		t.Errorf("unexpected response:\nwant=%+v,\n got=%+v", want, r)
	}
}

var submissionListTestCases = [...]struct {
	in  string
	out feeds.GetFeedSubmissionListResponse
	err error
}{
	0: {
		in: `<?xml version="1.0"?>
<GetFeedSubmissionListResponse xmlns="http://mws.amazonaws.com/doc/2009-01-01/">
  <GetFeedSubmissionListResult>
    <NextToken>2YgYW55IGNhcm5hbCBwbGVhc3VyZS4=</NextToken>
    <HasNext>true</HasNext>
    <FeedSubmissionInfo>
      <FeedSubmissionId>2291326430</FeedSubmissionId>
      <FeedType>_POST_PRODUCT_DATA_</FeedType>
      <SubmittedDate>2009-02-20T02:10:35+00:00</SubmittedDate>
      <FeedProcessingStatus>_DONE_</FeedProcessingStatus>
      <StartedProcessingDate>2009-02-20T02:11:00+00:00</StartedProcessingDate>
      <CompletedProcessingDate>2009-02-20T02:15:00+00:00</CompletedProcessingDate>
    </FeedSubmissionInfo>
    <FeedSubmissionInfo>
      <FeedSubmissionId>2291326431</FeedSubmissionId>
      <FeedType>_POST_PRODUCT_PRICING_DATA_</FeedType>
      <FeedProcessingStatus>_IN_PROGRESS_</FeedProcessingStatus>
    </FeedSubmissionInfo>
  </GetFeedSubmissionListResult>
  <ResponseMetadata>
    <RequestId>1105b931-6f1c-4480-8e97-f3b467840a9e</RequestId>
  </ResponseMetadata>
</GetFeedSubmissionListResponse>`,
		out: feeds.GetFeedSubmissionListResponse{
			RequestID: "1105b931-6f1c-4480-8e97-f3b467840a9e",
			NextToken: strPtr("2YgYW55IGNhcm5hbCBwbGVhc3VyZS4="),
			HasNext:   true,
			FeedSubmissionInfo: []feeds.FeedSubmissionInfo{
				{
					FeedSubmissionID:        "2291326430",
					FeedType:                feeds.FeedProduct,
					SubmittedDate:           date(2009, time.February, 20, 2, 10, 35),
					FeedProcessingStatus:    feeds.StatusDone,
					StartedProcessingDate:   date(2009, time.February, 20, 2, 11, 0),
					CompletedProcessingDate: date(2009, time.February, 20, 2, 15, 0),
				},
				{
					FeedSubmissionID:     "2291326431",
					FeedType:             feeds.FeedPricing,
					FeedProcessingStatus: feeds.StatusInProgress,
				},
			},
		},
	},
	1: {
		in: `<GetFeedSubmissionListByNextTokenResponse>
  <GetFeedSubmissionListByNextTokenResult>
    <HasNext>false</HasNext>
  </GetFeedSubmissionListByNextTokenResult>
  <ResponseMetadata><RequestId>r</RequestId></ResponseMetadata>
</GetFeedSubmissionListByNextTokenResponse>`,
		out: feeds.GetFeedSubmissionListResponse{RequestID: "r"},
	},
	2: {
		in:  `<GetFeedSubmissionListResponse><GetFeedSubmissionListResult><HasNext>maybe</HasNext></GetFeedSubmissionListResult></GetFeedSubmissionListResponse>`,
		err: decode.ErrParseValue,
	},
	3: {
		in:  `<ErrorResponse/>`,
		err: decode.ErrUnexpectedElement,
	},
}

func TestDecodeGetFeedSubmissionListResponse(t *testing.T) {
	for i, tc := range submissionListTestCases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			r, err := feeds.DecodeGetFeedSubmissionListResponse(decode.NewReader(strings.NewReader(tc.in)))
			if !errors.Is(err, tc.err) {
				t.Fatalf("unexpected error: want=%v, got=%v", tc.err, err)
			}
			if !reflect.DeepEqual(r, tc.out) {
				t.Errorf("unexpected response:\nwant=%+v,\n got=%+v", tc.out, r)
			}
		})
	}
}

var submissionInfoTestCases = []xmltest.StreamTestCase{
	0: {
		Value: &feeds.FeedSubmissionInfo{
			FeedSubmissionID:     "1",
			FeedType:             feeds.FeedInventory,
			SubmittedDate:        date(2009, time.February, 20, 2, 10, 35),
			FeedProcessingStatus: feeds.StatusSubmitted,
		},
		XML: `<FeedSubmissionId>1</FeedSubmissionId>` +
			`<FeedType>_POST_INVENTORY_AVAILABILITY_DATA_</FeedType>` +
			`<SubmittedDate>2009-02-20T02:10:35Z</SubmittedDate>` +
			`<FeedProcessingStatus>_SUBMITTED_</FeedProcessingStatus>`,
	},
	1: {
		NoMarshal: true,
		Value:     &feeds.FeedSubmissionInfo{},
		XML:       `<SubmittedDate>yesterday</SubmittedDate>`,
		Err:       decode.ErrParseValue,
	},
}

func TestFeedSubmissionInfo(t *testing.T) {
	xmltest.RunStreamTests(t, submissionInfoTestCases)
}
