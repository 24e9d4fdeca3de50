package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/miekg/dns"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pslkit/suffixd/internal/cache"
	"github.com/pslkit/suffixd/internal/psl"
)

const defaultTTL = 60

// Server answers public suffix queries over DNS: the TXT record of a
// name, optionally under a dedicated query zone, carries its suffix,
// registrable domain and rule classification.
type Server struct {
	c         *config
	zone      string // normalised fqdn form, empty when unset
	udpServer *dns.Server
	tcpServer *dns.Server
}

// New creates a lookup server using the supplied options.
func New(opts ...Option) (*Server, error) {
	c := &config{ttl: defaultTTL}
	for _, opt := range opts {
		opt(c)
	}
	if strings.TrimSpace(c.bind) == "" {
		return nil, fmt.Errorf("server requires a bind address")
	}
	if c.holder == nil {
		return nil, fmt.Errorf("server requires a list holder")
	}
	s := &Server{c: c}
	if z := strings.TrimSpace(c.zone); z != "" {
		s.zone = dns.Fqdn(strings.ToLower(z))
	}
	s.udpServer = &dns.Server{
		Addr:    c.bind,
		Net:     "udp",
		Handler: dns.HandlerFunc(s.handleDNS),
	}
	s.tcpServer = &dns.Server{
		Addr:    c.bind,
		Net:     "tcp",
		Handler: dns.HandlerFunc(s.handleDNS),
	}
	return s, nil
}

// Start listens on both UDP and TCP until ctx stops or a listener fails.
func (s *Server) Start(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.udpServer.ListenAndServe()
	})
	eg.Go(func() error {
		return s.tcpServer.ListenAndServe()
	})
	eg.Go(func() error {
		<-ctx.Done()
		s.shutdown()
		return ctx.Err()
	})
	return eg.Wait()
}

func (s *Server) shutdown() {
	_ = s.udpServer.Shutdown()
	_ = s.tcpServer.Shutdown()
}

func (s *Server) handleDNS(w dns.ResponseWriter, req *dns.Msg) {
	ctx := context.Background()
	defer func() {
		if r := recover(); r != nil {
			logutil.GetLogger(ctx).Error("panic recovered while handling query", zap.Any("panic", r))
		}
	}()

	resp := s.processRequest(ctx, req)
	if resp == nil {
		resp = new(dns.Msg)
		resp.SetRcode(req, dns.RcodeServerFailure)
	}
	if len(resp.Question) == 0 {
		resp.Question = req.Question
	}
	resp.Id = req.Id
	resp.Compress = true
	if err := w.WriteMsg(resp); err != nil {
		logutil.GetLogger(ctx).Error("write response failed", zap.Error(err))
	}
}

func (s *Server) processRequest(ctx context.Context, req *dns.Msg) *dns.Msg {
	if req == nil {
		return nil
	}
	if req.Opcode != dns.OpcodeQuery || len(req.Question) == 0 {
		msg := new(dns.Msg)
		msg.SetRcode(req, dns.RcodeNotImplemented)
		return msg
	}
	question := req.Question[0]
	if question.Qtype != dns.TypeTXT && question.Qtype != dns.TypeANY {
		msg := new(dns.Msg)
		msg.SetRcode(req, dns.RcodeNotImplemented)
		return msg
	}
	name, ok := s.extractName(question.Name)
	if !ok {
		msg := new(dns.Msg)
		msg.SetRcode(req, dns.RcodeNameError)
		return msg
	}
	if err := psl.ValidateHost(name); err != nil {
		logutil.GetLogger(ctx).Debug("reject invalid query name",
			zap.String("name", name), zap.Error(err))
		msg := new(dns.Msg)
		msg.SetRcode(req, dns.RcodeNameError)
		return msg
	}
	list := s.c.holder.List()
	if list == nil {
		// no usable list yet, refuse instead of guessing
		return nil
	}
	key := cache.Key(s.c.holder.Generation(), name)
	d, found := s.c.cache.Get(key)
	if !found {
		d = list.Parse(name)
		s.c.cache.Set(key, d)
	}

	reply := new(dns.Msg)
	reply.SetReply(req)
	reply.Answer = append(reply.Answer, &dns.TXT{
		Hdr: dns.RR_Header{
			Name:   question.Name,
			Rrtype: dns.TypeTXT,
			Class:  question.Qclass,
			Ttl:    s.c.ttl,
		},
		Txt: []string{formatAnswer(d)},
	})
	return reply
}

// extractName strips the query zone and trailing dot from the qname.
func (s *Server) extractName(qname string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(qname))
	if s.zone != "" {
		if !strings.HasSuffix(name, "."+s.zone) {
			return "", false
		}
		name = name[:len(name)-len(s.zone)-1]
	} else {
		name = strings.TrimSuffix(name, ".")
	}
	if name == "" {
		return "", false
	}
	return name, true
}

func formatAnswer(d psl.Domain) string {
	return fmt.Sprintf("suffix=%s root=%s type=%s", d.Suffix(), d.Root(), d.Type())
}
